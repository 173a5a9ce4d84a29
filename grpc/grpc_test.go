package grpc

import (
	context "context"
	"net"
	"testing"
	"time"

	"github.com/JustDean/sessionstore/pkg/session"
	"github.com/JustDean/sessionstore/pkg/utils"
	grpc_base "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func startServer(t *testing.T, store *session.Store) SessionsClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := newServer(lis, store)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		server.Run(ctx)
		close(done)
	}()
	conn, err := grpc_base.NewClient("passthrough:///bufnet",
		grpc_base.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc_base.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})
	return NewSessionsClient(conn)
}

func newStore(t *testing.T) (*session.Store, func(time.Duration)) {
	t.Helper()
	clock, advance := utils.FixedClock(epoch)
	store := session.NewStore(session.NewMemoryRepository(), session.WithClock(clock))
	t.Cleanup(store.Close)
	return store, advance
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	client := startServer(t, store)

	var header metadata.MD
	token, err := client.Issue(ctx, NewIssueRequest("alice", 2), grpc_base.Header(&header))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(token.GetValue()) != session.TokenLength {
		t.Errorf("token length = %d", len(token.GetValue()))
	}
	if ids := header.Get(requestIdHeader); len(ids) != 1 || ids[0] == "" {
		t.Errorf("missing request id header: %v", header)
	}

	req := wrapperspb.String(token.GetValue())
	if valid, err := client.IsValid(ctx, req); err != nil || !valid.GetValue() {
		t.Errorf("IsValid = %v, %v", valid, err)
	}
	if login, err := client.GetLogin(ctx, req); err != nil || login.GetValue() != "alice" {
		t.Errorf("GetLogin = %v, %v", login, err)
	}
	if role, err := client.GetRoleId(ctx, req); err != nil || role.GetValue() != 2 {
		t.Errorf("GetRoleId = %v, %v", role, err)
	}
	if _, err := client.Revoke(ctx, req); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := client.Revoke(ctx, req); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
	if valid, err := client.IsValid(ctx, req); err != nil || valid.GetValue() {
		t.Errorf("IsValid after revoke = %v, %v", valid, err)
	}
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	store, advance := newStore(t)
	client := startServer(t, store)

	token, err := client.Issue(ctx, NewIssueRequest("alice", 1))
	if err != nil {
		t.Fatal(err)
	}
	advance(session.DefaultTTL)
	if valid, err := client.IsValid(ctx, token); err != nil || valid.GetValue() {
		t.Errorf("IsValid after ttl = %v, %v", valid, err)
	}
	// the check above swept the row
	if _, err := client.GetLogin(ctx, token); status.Code(err) != codes.NotFound {
		t.Errorf("GetLogin code = %v, want NotFound", status.Code(err))
	}
}

func TestErrorCodes(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	client := startServer(t, store)

	badIssue := []*structpb.Struct{
		{},
		NewIssueRequest("", 1),
		{Fields: map[string]*structpb.Value{
			"login":   structpb.NewStringValue("alice"),
			"role_id": structpb.NewNumberValue(1.5),
		}},
		{Fields: map[string]*structpb.Value{
			"login":   structpb.NewStringValue("alice"),
			"role_id": structpb.NewStringValue("admin"),
		}},
	}
	for i, req := range badIssue {
		if _, err := client.Issue(ctx, req); status.Code(err) != codes.InvalidArgument {
			t.Errorf("bad issue #%d: code = %v, want InvalidArgument", i, status.Code(err))
		}
	}

	missing := wrapperspb.String("missing")
	if _, err := client.GetRoleId(ctx, missing); status.Code(err) != codes.NotFound {
		t.Errorf("GetRoleId code = %v, want NotFound", status.Code(err))
	}

	store.Close()
	if _, err := client.IsValid(ctx, missing); status.Code(err) != codes.Unavailable {
		t.Errorf("IsValid on closed store code = %v, want Unavailable", status.Code(err))
	}
}
