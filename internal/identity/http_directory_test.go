package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/enums"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
)

func newTestDirectory(t *testing.T, handler http.Handler) (*HTTPDirectory, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	directory, err := NewHTTPDirectory(config.IdentityConfig{
		DirectoryBaseURL: server.URL,
		DirectoryAPIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("new directory: %v", err)
	}
	return directory, server
}

func TestVerifyMemberStatusDecodesMember(t *testing.T) {
	directory, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/members/status" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"memberId":"member-123","loginId":"testuser","memberStatus":"ACTIVE","passwordHash":"$argon2id$..."}`))
	}))

	member, err := directory.VerifyMemberStatus(context.Background(), "testuser")
	if err != nil {
		t.Fatalf("verify member status: %v", err)
	}
	if member.MemberID != "member-123" || member.MemberStatus != "ACTIVE" {
		t.Fatalf("unexpected member %+v", member)
	}
}

func TestVerifyMemberStatusSurfacesDirectoryError(t *testing.T) {
	directory, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user_not_found","error_description":"User not found in directory","error_codes":[90001]}`))
	}))

	_, err := directory.VerifyMemberStatus(context.Background(), "ghost")
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error got %v", err)
	}
	if typed.Code() != pkgerrors.Code("90001") {
		t.Fatalf("expected code 90001 got %q", typed.Code())
	}
}

func TestInitiateReturnsRawPayload(t *testing.T) {
	directory, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/challenges/initiate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"initiated"}`))
	}))

	payload, err := directory.Initiate(context.Background(), []enums.ChallengeType{enums.ChallengeOneTimePasscode}, "testuser")
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if payload != `{"status":"initiated"}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestDirectoryServerErrorFails(t *testing.T) {
	directory, _ := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := directory.VerifyMemberStatus(context.Background(), "testuser")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
