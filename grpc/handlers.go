package grpc

import (
	context "context"
	"errors"
	"log"
	"math"

	"github.com/JustDean/sessionstore/pkg/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// NewIssueRequest builds the Issue payload.
func NewIssueRequest(login string, roleId int32) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"login":   structpb.NewStringValue(login),
		"role_id": structpb.NewNumberValue(float64(roleId)),
	}}
}

func parseIssueRequest(in *structpb.Struct) (string, int32, error) {
	fields := in.GetFields()
	login, ok := fields["login"].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", 0, status.Error(codes.InvalidArgument, "login must be a string")
	}
	role, ok := fields["role_id"].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return "", 0, status.Error(codes.InvalidArgument, "role_id must be a number")
	}
	n := role.NumberValue
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return "", 0, status.Errorf(codes.InvalidArgument, "role_id %v is not a 32-bit integer", n)
	}
	return login.StringValue, int32(n), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, session.ErrNoConnection):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, session.ErrEmptyLogin):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *Server) Issue(ctx context.Context, data *structpb.Struct) (*wrapperspb.StringValue, error) {
	login, roleId, err := parseIssueRequest(data)
	if err != nil {
		log.Printf("[%s] Error Issue - %v", requestId(ctx), err)
		return nil, err
	}
	token, err := s.store.Issue(ctx, login, roleId)
	if err != nil {
		log.Printf("[%s] Error Issue - for user %s: %v", requestId(ctx), login, err)
		return nil, toStatus(err)
	}
	log.Printf("[%s] Success Issue - for user %s, token %s", requestId(ctx), login, session.ShortToken(token))
	return wrapperspb.String(token), nil
}

func (s *Server) IsValid(ctx context.Context, data *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	valid, err := s.store.IsValid(ctx, data.GetValue())
	if err != nil {
		log.Printf("[%s] Error IsValid - %s: %v", requestId(ctx), session.ShortToken(data.GetValue()), err)
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(valid), nil
}

func (s *Server) GetLogin(ctx context.Context, data *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	login, err := s.store.GetLogin(ctx, data.GetValue())
	if err != nil {
		log.Printf("[%s] Error GetLogin - %s: %v", requestId(ctx), session.ShortToken(data.GetValue()), err)
		return nil, toStatus(err)
	}
	return wrapperspb.String(login), nil
}

func (s *Server) GetRoleId(ctx context.Context, data *wrapperspb.StringValue) (*wrapperspb.Int32Value, error) {
	roleId, err := s.store.GetRoleId(ctx, data.GetValue())
	if err != nil {
		log.Printf("[%s] Error GetRoleId - %s: %v", requestId(ctx), session.ShortToken(data.GetValue()), err)
		return nil, toStatus(err)
	}
	return wrapperspb.Int32(roleId), nil
}

func (s *Server) Revoke(ctx context.Context, data *wrapperspb.StringValue) (*emptypb.Empty, error) {
	err := s.store.Revoke(ctx, data.GetValue())
	if err != nil {
		log.Printf("[%s] Error Revoke - %s: %v", requestId(ctx), session.ShortToken(data.GetValue()), err)
		return nil, toStatus(err)
	}
	log.Printf("[%s] Success Revoke - %s", requestId(ctx), session.ShortToken(data.GetValue()))
	return &emptypb.Empty{}, nil
}
