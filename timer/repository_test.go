package timer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HabitTimers/storage"
	"HabitTimers/timer"
)

func newTestRepo(t *testing.T) (*timer.Repository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := timer.NewRepository(store)
	repo.Load()
	return repo, store
}

// TestAdd verifies a valid add yields duration = minutes*60, a zero count
// and a fresh unique id.
func TestAdd(t *testing.T) {
	repo, _ := newTestRepo(t)

	first, err := repo.Add("Reading", 25, timer.AlarmBell)
	require.NoError(t, err)
	assert.Equal(t, 25*60, first.Duration)
	assert.Equal(t, 0, first.Count)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, timer.AlarmBell, first.Alarm)

	second, err := repo.Add("Stretching", 0.5, timer.AlarmChime)
	require.NoError(t, err)
	assert.Equal(t, 30, second.Duration)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, repo.Len())
}

// TestAddValidation verifies invalid inputs are rejected with a
// ValidationError naming the failed field and leave the repository
// unchanged.
func TestAddValidation(t *testing.T) {
	tests := []struct {
		name      string
		timerName string
		minutes   float64
		wantField string
	}{
		{"empty name", "", 5, "name"},
		{"zero minutes", "Walk", 0, "minutes"},
		{"negative minutes", "Walk", -3, "minutes"},
		{"NaN minutes", "Walk", math.NaN(), "minutes"},
		{"infinite minutes", "Walk", math.Inf(1), "minutes"},
		{"sub-second minutes", "Walk", 0.001, "minutes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, _ := newTestRepo(t)

			_, err := repo.Add(tc.timerName, tc.minutes, timer.AlarmBell)

			var verr *timer.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
			assert.Equal(t, 0, repo.Len())
		})
	}
}

// TestRemove verifies deletion and that removing an unknown id is a no-op.
func TestRemove(t *testing.T) {
	repo, _ := newTestRepo(t)
	kept, err := repo.Add("Keep", 10, timer.AlarmBell)
	require.NoError(t, err)
	gone, err := repo.Add("Gone", 10, timer.AlarmBell)
	require.NoError(t, err)

	repo.Remove(gone.ID)
	assert.Equal(t, 1, repo.Len())
	_, ok := repo.Get(gone.ID)
	assert.False(t, ok)
	_, ok = repo.Get(kept.ID)
	assert.True(t, ok)

	repo.Remove("no-such-id")
	assert.Equal(t, 1, repo.Len())
}

// TestRecordCompletion verifies the count increment targets exactly one
// timer and that unknown ids are a no-op.
func TestRecordCompletion(t *testing.T) {
	repo, _ := newTestRepo(t)
	first, err := repo.Add("First", 1, timer.AlarmBell)
	require.NoError(t, err)
	second, err := repo.Add("Second", 5, timer.AlarmBeep)
	require.NoError(t, err)

	repo.RecordCompletion(first.ID)

	got, ok := repo.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Count)

	other, ok := repo.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, 0, other.Count)

	repo.RecordCompletion("no-such-id")
	got, _ = repo.Get(first.ID)
	assert.Equal(t, 1, got.Count)
}

// TestTotalElapsed verifies Σ(duration × count).
func TestTotalElapsed(t *testing.T) {
	repo, _ := newTestRepo(t)
	one, err := repo.Add("One", 1, timer.AlarmBell) // 60s
	require.NoError(t, err)
	five, err := repo.Add("Five", 5, timer.AlarmBell) // 300s
	require.NoError(t, err)

	repo.RecordCompletion(one.ID)
	repo.RecordCompletion(one.ID)
	repo.RecordCompletion(five.ID)

	assert.Equal(t, 420, repo.TotalElapsed())
}

// TestLoadRoundTrip verifies a second repository on the same store sees an
// identical list.
func TestLoadRoundTrip(t *testing.T) {
	repo, store := newTestRepo(t)
	_, err := repo.Add("Reading", 25, timer.AlarmChime)
	require.NoError(t, err)
	added, err := repo.Add("Pushups", 2, timer.AlarmSilent)
	require.NoError(t, err)
	repo.RecordCompletion(added.ID)

	reloaded := timer.NewRepository(store)
	reloaded.Load()

	assert.Equal(t, repo.All(), reloaded.All())
}

// TestLoadDegradation verifies missing, malformed and unreadable data all
// yield an empty list without failing.
func TestLoadDegradation(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo := timer.NewRepository(storage.NewMemoryStore())
		repo.Load()
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("malformed", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(timer.StoreKey, "{not json"))
		repo := timer.NewRepository(store)
		repo.Load()
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("read error", func(t *testing.T) {
		store := storage.NewMemoryStore()
		store.GetErr = errors.New("backend down")
		repo := timer.NewRepository(store)
		repo.Load()
		assert.Equal(t, 0, repo.Len())
	})
}

// TestLoadNormalizesAlarm verifies unknown alarm types in stored data fall
// back to bell.
func TestLoadNormalizesAlarm(t *testing.T) {
	store := storage.NewMemoryStore()
	raw := `[{"id":"a","name":"Old","duration":60,"count":3,"alarmType":"klaxon"}]`
	require.NoError(t, store.Set(timer.StoreKey, raw))

	repo := timer.NewRepository(store)
	repo.Load()

	got, ok := repo.Get("a")
	require.True(t, ok)
	assert.Equal(t, timer.AlarmBell, got.Alarm)
	assert.Equal(t, 3, got.Count)
}

// TestWriteFailureKeepsMemory verifies a failed persist does not roll back
// the in-memory mutation.
func TestWriteFailureKeepsMemory(t *testing.T) {
	repo, store := newTestRepo(t)
	store.SetErr = errors.New("disk full")

	added, err := repo.Add("Survives", 3, timer.AlarmBell)
	require.NoError(t, err)

	got, ok := repo.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Survives", got.Name)
	assert.Equal(t, 1, repo.Len())
}
