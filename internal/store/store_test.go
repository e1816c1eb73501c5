package store_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/bossdle/internal/game"
	"github.com/robalobadob/bossdle/internal/store"
)

func openAll(t *testing.T) map[string]func(*testing.T) store.Store {
	t.Helper()
	dir := t.TempDir()
	open := func(engine, path string) func(*testing.T) store.Store {
		return func(t *testing.T) store.Store {
			st, err := store.NewByEngine(engine, path)
			if err != nil {
				t.Fatalf("NewByEngine(%s) error = %v", engine, err)
			}
			t.Cleanup(func() { _ = st.Close() })
			return st
		}
	}
	return map[string]func(*testing.T) store.Store{
		store.EngineMemory: open(store.EngineMemory, ""),
		store.EngineJSON:   open(store.EngineJSON, filepath.Join(dir, "json", "bossdle.json")),
		store.EngineSQLite: open(store.EngineSQLite, filepath.Join(dir, "sqlite", "bossdle.db")),
	}
}

func TestStoreEmptyState(t *testing.T) {
	ctx := context.Background()
	for name, open := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			names, err := st.LoadAttempts(ctx)
			if err != nil || len(names) != 0 {
				t.Fatalf("LoadAttempts() = %v, %v", names, err)
			}
			if _, ok, err := st.LoadLastDay(ctx); err != nil || ok {
				t.Fatalf("LoadLastDay() ok=%v err=%v, want absent", ok, err)
			}
			if s, err := st.LoadStats(ctx); err != nil || s != (game.Stats{}) {
				t.Fatalf("LoadStats() = %+v, %v", s, err)
			}
		})
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, open := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			if err := st.SaveAttempts(ctx, []string{"Godrick", "Margit"}); err != nil {
				t.Fatal(err)
			}
			if err := st.SaveLastDay(ctx, 42); err != nil {
				t.Fatal(err)
			}
			want := game.Stats{Played: 5, Wins: 4, Streak: 2}
			if err := st.SaveStats(ctx, want); err != nil {
				t.Fatal(err)
			}
			// Overwrite to check upsert semantics.
			if err := st.SaveLastDay(ctx, 43); err != nil {
				t.Fatal(err)
			}

			names, _ := st.LoadAttempts(ctx)
			if !reflect.DeepEqual(names, []string{"Godrick", "Margit"}) {
				t.Errorf("LoadAttempts() = %v", names)
			}
			if day, ok, _ := st.LoadLastDay(ctx); !ok || day != 43 {
				t.Errorf("LoadLastDay() = %d, %v", day, ok)
			}
			if s, _ := st.LoadStats(ctx); s != want {
				t.Errorf("LoadStats() = %+v, want %+v", s, want)
			}
		})
	}
}

func TestDurableStoresSurviveReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, tc := range []struct{ engine, path string }{
		{store.EngineJSON, filepath.Join(dir, "state.json")},
		{store.EngineSQLite, filepath.Join(dir, "state.db")},
	} {
		t.Run(tc.engine, func(t *testing.T) {
			st, err := store.NewByEngine(tc.engine, tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if err := st.SaveLastDay(ctx, 7); err != nil {
				t.Fatal(err)
			}
			if err := st.SaveAttempts(ctx, []string{"Mohg"}); err != nil {
				t.Fatal(err)
			}
			_ = st.Close()

			again, err := store.NewByEngine(tc.engine, tc.path)
			if err != nil {
				t.Fatalf("reopen error = %v", err)
			}
			defer again.Close()
			if day, ok, _ := again.LoadLastDay(ctx); !ok || day != 7 {
				t.Errorf("LoadLastDay() after reopen = %d, %v", day, ok)
			}
			if names, _ := again.LoadAttempts(ctx); !reflect.DeepEqual(names, []string{"Mohg"}) {
				t.Errorf("LoadAttempts() after reopen = %v", names)
			}
		})
	}
}

func TestNewByEngineUnknown(t *testing.T) {
	if _, err := store.NewByEngine("redis", ""); err == nil {
		t.Fatal("expected error for unsupported engine")
	}
}
