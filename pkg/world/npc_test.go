package world

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		points int
		want   Tier
	}{
		{0, TierNeutral},
		{25, TierNeutral},
		{26, TierFriendly},
		{75, TierFriendly},
		{76, TierAlly},
		{500, TierAlly},
	}
	for _, tc := range tests {
		if got := TierFor(tc.points); got != tc.want {
			t.Errorf("TierFor(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

func TestAddPoints_TierNotice(t *testing.T) {
	npc := &NPC{Key: "blacksmith", Name: "Rogan the Blacksmith"}

	if notice := npc.AddPoints(10); notice != "" {
		t.Errorf("No tier crossed, expected no notice, got %q", notice)
	}
	notice := npc.AddPoints(20)
	if notice == "" {
		t.Error("Expected a notice crossing neutral -> friendly")
	}
	if npc.Tier() != TierFriendly {
		t.Errorf("Expected friendly, got %s", npc.Tier())
	}
	// Same tier again: no repeat notice.
	if notice := npc.AddPoints(5); notice != "" {
		t.Errorf("Expected no notice within tier, got %q", notice)
	}
}

func TestAddPoints_FloorsAtZero(t *testing.T) {
	npc := &NPC{Key: "elder", Name: "Elder Maren", RelationshipPoints: 3}
	npc.AddPoints(-10)
	if npc.RelationshipPoints != 0 {
		t.Errorf("Expected points floored at 0, got %d", npc.RelationshipPoints)
	}
}

func TestRecentMemory_Window(t *testing.T) {
	npc := &NPC{Key: "merchant", Name: "Tilda"}
	for _, entry := range []string{"a", "b", "c", "d", "e"} {
		npc.Remember(entry)
	}
	recent := npc.RecentMemory()
	if len(recent) != 3 {
		t.Fatalf("Expected 3 recent entries, got %d", len(recent))
	}
	if recent[0] != "c" || recent[2] != "e" {
		t.Errorf("Expected [c d e], got %v", recent)
	}
	if len(npc.Memory) != 5 {
		t.Errorf("Memory log should remain append-only with 5 entries, got %d", len(npc.Memory))
	}
}

func TestNoteTopic(t *testing.T) {
	npc := &NPC{Key: "herbalist", Name: "Sera"}
	npc.NoteTopic("treasure")
	npc.NoteTopic("treasure")
	if n := npc.NoteTopic("treasure"); n != 3 {
		t.Errorf("Expected count 3, got %d", n)
	}
}
