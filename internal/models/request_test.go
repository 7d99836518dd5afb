package models

import (
	"encoding/json"
	"testing"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   ServiceStatus
		expected bool
	}{
		{"pending", StatusPending, true},
		{"in progress", StatusInProgress, true},
		{"completed", StatusCompleted, true},
		{"cancelled", StatusCancelled, true},
		{"lowercase variant", "pending", false},
		{"unknown status", "ON_HOLD", false},
		{"empty status", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.expected {
				t.Errorf("IsValidStatus(%s) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestServiceRequest_Owner(t *testing.T) {
	withCreator := ServiceRequest{CreatedBy: "Ravi", LastEditedBy: "Sam"}
	if withCreator.Owner() != "Ravi" {
		t.Errorf("expected creator to win, got %s", withCreator.Owner())
	}

	legacy := ServiceRequest{LastEditedBy: "Ravi"}
	if legacy.Owner() != "Ravi" {
		t.Errorf("expected last editor fallback, got %s", legacy.Owner())
	}

	unattributed := ServiceRequest{}
	if unattributed.Owner() != "" {
		t.Errorf("expected empty owner, got %s", unattributed.Owner())
	}
}

func TestServiceRequest_JSONOmitsEmptyAudit(t *testing.T) {
	data, err := json.Marshal(ServiceRequest{CustomerName: "Anand Traders"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := out["last_edited_by"]; ok {
		t.Error("expected last_edited_by to be omitted when empty")
	}
	if _, ok := out["last_edited_at"]; ok {
		t.Error("expected last_edited_at to be omitted when unset")
	}
}
