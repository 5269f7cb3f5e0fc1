package domain

import "testing"

func TestNewAdminSet(t *testing.T) {
	set, err := NewAdminSet([]ChatAdmin{
		{UserID: 10},
		{UserID: 20, IsOwner: true},
		{UserID: 30},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if set.OwnerID != 20 {
		t.Errorf("Expected owner 20, got %d", set.OwnerID)
	}
	for _, id := range []int64{10, 20, 30} {
		if !set.Contains(id) {
			t.Errorf("Expected %d to be privileged", id)
		}
	}
	if set.Contains(99) {
		t.Error("Expected 99 to not be privileged")
	}
}

func TestNewAdminSet_NoOwner(t *testing.T) {
	_, err := NewAdminSet([]ChatAdmin{{UserID: 10}, {UserID: 20}})
	if err == nil {
		t.Fatal("Expected error when no owner is present")
	}
}
