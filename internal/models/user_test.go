package models

import (
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"staff role", RoleStaff, true},
		{"invalid role", "manager", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	staff := &User{Role: RoleStaff}
	unknown := &User{Role: "contractor"}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		{"admin can manage users", admin, "manage_users", true},
		{"admin can delete user", admin, "delete_user", true},
		{"admin can delete request", admin, "delete_request", true},
		{"admin can export reports", admin, "export_reports", true},

		{"staff can view requests", staff, "view_requests", true},
		{"staff can create request", staff, "create_request", true},
		{"staff can update request", staff, "update_request", true},
		{"staff can delete request", staff, "delete_request", true},
		{"staff cannot manage users", staff, "manage_users", false},
		{"staff cannot delete user", staff, "delete_user", false},

		{"unknown role has no permissions", unknown, "view_requests", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.user.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("HasPermission(%s) = %v, want %v", tt.action, result, tt.expected)
			}
		})
	}
}
