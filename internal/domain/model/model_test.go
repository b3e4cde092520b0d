package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"accepted", OrderStatusAccepted, "accepted"},
		{"shipped", OrderStatusShipped, "shipped"},
		{"delivered", OrderStatusDelivered, "delivered"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestRoleValues(t *testing.T) {
	cases := []struct {
		role  Role
		value string
	}{
		{RoleUser, "user"},
		{RoleSeller, "seller"},
	}

	for _, tc := range cases {
		if string(tc.role) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.role)
		}
	}
}
