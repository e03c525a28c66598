package config

import (
	"sync"
	"testing"
)

func twoClusterStore() *Store {
	return NewStore(&Clusters{
		Clusters: map[string]Cluster{
			"prod":    {Server: "https://prod.example.com", DefaultProject: "main"},
			"staging": {Server: "https://staging.example.com"},
		},
		DefaultCluster: "prod",
	})
}

func TestStoreActiveDefault(t *testing.T) {
	store := twoClusterStore()
	ac, err := store.Active()
	if err != nil {
		t.Fatalf("Active error: %v", err)
	}
	if ac.Name != "prod" || ac.Cluster.DefaultProject != "main" {
		t.Errorf("active = %+v", ac)
	}
}

func TestStoreActiveNoDefault(t *testing.T) {
	store := NewStore(&Clusters{
		Clusters: map[string]Cluster{
			"a": {Server: "https://a.example.com"},
		},
	})
	if _, err := store.Active(); err == nil {
		t.Fatal("expected error with no default cluster")
	}
}

func TestStoreSwitch(t *testing.T) {
	store := twoClusterStore()

	previous, err := store.Switch("staging")
	if err != nil {
		t.Fatalf("Switch error: %v", err)
	}
	if previous != "prod" {
		t.Errorf("previous = %q", previous)
	}

	ac, _ := store.Active()
	if ac.Name != "staging" {
		t.Errorf("active = %s", ac.Name)
	}
}

func TestStoreSwitchUnknownLeavesActiveUnchanged(t *testing.T) {
	store := twoClusterStore()

	previous, err := store.Switch("nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if previous != "prod" {
		t.Errorf("previous = %q", previous)
	}

	ac, _ := store.Active()
	if ac.Name != "prod" {
		t.Errorf("active changed to %s after failed switch", ac.Name)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := twoClusterStore()

	all, active := store.All()
	if len(all) != 2 || active != "prod" {
		t.Fatalf("All() = %v, %q", all, active)
	}

	// Mutating the returned map must not touch the store.
	delete(all, "prod")
	ac, err := store.Active()
	if err != nil || ac.Name != "prod" {
		t.Errorf("store mutated through All() result: %v, %v", ac, err)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := twoClusterStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Active()
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Switch("staging")
		}()
	}
	wg.Wait()

	ac, err := store.Active()
	if err != nil {
		t.Fatalf("Active error after concurrent use: %v", err)
	}
	if ac.Name != "staging" {
		t.Errorf("active = %s", ac.Name)
	}
}
