package fbitda

import (
	"context"
	"encoding/json"
	"testing"
)

func TestSnapshot_MarshalJSON(t *testing.T) {
	s := Snapshot{
		SessionID:  "s1",
		Inputs:     DefaultInputs(),
		Valuation:  Calculate(DefaultInputs()),
		Reviews:    DefaultReviews(),
		Elapsed:    NewElapsedTime(61),
		User:       UserContext{Name: "Ada", Role: RoleInput},
		Visibility: DefaultVisibility(),
	}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"sessionId":"s1",` +
		`"user":{"name":"Ada","role":"team1"},` +
		`"inputs":{"ebitda":10,"interestRate":5,"multiple":10,"factorScore":3,"companyName":"Acme Corp","description":""},` +
		`"valuation":{"amount":300,"percentage":0.00003,"ceiling":1000000000,"display":"$300"},` +
		`"reviews":{"ebitda":"ok","interestRate":"ok","multiple":"ok","factorScore":"ok","companyName":"ok","description":"tbd"},` +
		`"elapsed":{"hours":0,"minutes":1,"seconds":1,"totalSeconds":61,"clock":"00:01:01"},` +
		`"visibility":{"guidance":true,"video":false,"text":false},` +
		`"complete":false}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestSnapshot_Permissions(t *testing.T) {
	for _, tt := range []struct {
		role            Role
		edit, canReview bool
	}{
		{RoleInput, true, false},
		{RoleApprove, false, true},
		{RoleNone, false, false},
	} {
		s := Snapshot{User: UserContext{Role: tt.role}}
		if s.CanEdit() != tt.edit || s.CanReview() != tt.canReview {
			t.Errorf("role %q: CanEdit() = %v, CanReview() = %v, want %v, %v", tt.role, s.CanEdit(), s.CanReview(), tt.edit, tt.canReview)
		}
	}
}

func TestQuery(t *testing.T) {
	s := NewStore(context.Background())
	defer s.Close()
	s.SetRole(RoleInput)
	s.UpdateInput(FieldEBITDA, "1000000")
	snap := s.Snapshot()

	tests := []struct {
		path string
		want any
	}{
		{"$.valuation.amount", 30000000.0},
		{"$.valuation.display", "$30 million"},
		{"$.inputs.companyName", "Acme Corp"},
		{"$.user.role", "team1"},
		{"$.reviews.description", "tbd"},
		{"$.complete", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Query(snap, tt.path)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Query(%q) = %v (%T), want %v", tt.path, got, got, tt.want)
			}
		})
	}

	if _, err := Query(snap, "$.nope"); err == nil {
		t.Error("Query($.nope) succeeded, want an error")
	}
}
