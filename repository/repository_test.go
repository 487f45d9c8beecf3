package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"testing"

	"parade/config"
	"parade/utils"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const testSchema = "parade"

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("Could not construct pool, skipping database tests: %s", err)
		os.Exit(m.Run())
	}
	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		log.Printf("Could not connect to Docker, skipping database tests: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	dsn := fmt.Sprintf("host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable",
		resource.GetPort("5432/tcp"))

	// the container might not accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = config.Open(dsn, testSchema)
		if err != nil {
			return err
		}
		return db.AutoMigrate(Models()...)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}
	if err := RegisterQueryMetrics(db); err != nil {
		log.Fatalf("Could not register query metrics: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if db == nil {
		t.Skip("docker is not available")
	}
	t.Cleanup(TearDown)
}

func TearDown() {
	// everything else cascades from events
	db.Exec("DELETE FROM " + testSchema + ".events")
}

func createEvent(t *testing.T, name string) *Event {
	t.Helper()
	event, err := NewEventRepository(db).Save(&Event{Name: name, Active: true, OverallLabel: DefaultOverallLabel})
	require.NoError(t, err)
	return event
}

func createEntry(t *testing.T, eventId int, name string, position *int) *Entry {
	t.Helper()
	entry, err := NewEntryRepository(db).Save(&Entry{EventId: eventId, OrganizationName: name, Approved: true, Position: position})
	require.NoError(t, err)
	return entry
}

func createCategory(t *testing.T, eventId int, name string, order int) *Category {
	t.Helper()
	category, err := NewCategoryRepository(db).SaveCategory(&Category{EventId: eventId, Name: name, DisplayOrder: order, Required: true, MaxScore: 10})
	require.NoError(t, err)
	return category
}

func createJudge(t *testing.T, eventId int, name string) *Judge {
	t.Helper()
	judge, err := NewJudgeRepository(db).Save(&Judge{EventId: eventId, Name: name, AccessCode: name + "-code"})
	require.NoError(t, err)
	return judge
}

func intPtr(v int) *int {
	return &v
}

func positionOf(t *testing.T, entryId int) *int {
	t.Helper()
	entry, err := NewEntryRepository(db).GetEntryById(entryId)
	require.NoError(t, err)
	return entry.Position
}

func TestAssignPositionShiftsOnlyWithinEvent(t *testing.T) {
	requireDB(t)
	repo := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	other := createEvent(t, "Fall Parade")
	first := createEntry(t, parade.Id, "Bakery", intPtr(1))
	second := createEntry(t, parade.Id, "Choir", intPtr(2))
	third := createEntry(t, parade.Id, "Marching Band", intPtr(3))
	late := createEntry(t, parade.Id, "Scouts", nil)
	elsewhere := createEntry(t, other.Id, "Fire Department", intPtr(2))

	placed, err := repo.AssignPosition(parade.Id, late.Id, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, placed.Shifted)
	assert.Equal(t, 2, *placed.Entry.Position)

	assert.Equal(t, 1, *positionOf(t, first.Id))
	assert.Equal(t, 3, *positionOf(t, second.Id))
	assert.Equal(t, 4, *positionOf(t, third.Id))
	assert.Equal(t, 2, *positionOf(t, elsewhere.Id))

	entries, err := repo.GetEntriesForEvent(parade.Id, EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{first.Id, late.Id, second.Id, third.Id}, utils.Map(entries, func(e *Entry) int { return e.Id }))
}

func TestAssignPositionUnorderedSlotIsShared(t *testing.T) {
	requireDB(t)
	repo := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	a := createEntry(t, parade.Id, "Bakery", intPtr(999))
	b := createEntry(t, parade.Id, "Choir", nil)

	placed, err := repo.AssignPosition(parade.Id, b.Id, 999)
	require.NoError(t, err)
	assert.Equal(t, 0, placed.Shifted)
	assert.Equal(t, 999, *positionOf(t, a.Id))
	assert.Equal(t, 999, *positionOf(t, b.Id))
}

func TestAssignPositionRejectsForeignEntry(t *testing.T) {
	requireDB(t)
	repo := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	other := createEvent(t, "Fall Parade")
	foreign := createEntry(t, other.Id, "Fire Department", nil)

	_, err := repo.AssignPosition(parade.Id, foreign.Id, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUniquePositionIndex(t *testing.T) {
	requireDB(t)
	parade := createEvent(t, "Spring Parade")
	createEntry(t, parade.Id, "Bakery", intPtr(4))

	_, err := NewEntryRepository(db).Save(&Entry{EventId: parade.Id, OrganizationName: "Choir", Position: intPtr(4)})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSetApproval(t *testing.T) {
	requireDB(t)
	repo := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	taken := createEntry(t, parade.Id, "Bakery", intPtr(1))
	pending, err := repo.Save(&Entry{EventId: parade.Id, OrganizationName: "Choir"})
	require.NoError(t, err)

	placed, err := repo.SetApproval(parade.Id, pending.Id, true, intPtr(1))
	require.NoError(t, err)
	assert.True(t, placed.Entry.Approved)
	assert.Equal(t, 1, *placed.Entry.Position)
	assert.Equal(t, 2, *positionOf(t, taken.Id))

	placed, err = repo.SetApproval(parade.Id, pending.Id, false, nil)
	require.NoError(t, err)
	assert.False(t, placed.Entry.Approved)
	assert.Nil(t, placed.Entry.Position)

	_, err = repo.SetApproval(parade.Id+1000, pending.Id, true, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMergeMetadata(t *testing.T) {
	requireDB(t)
	repo := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	entry := createEntry(t, parade.Id, "Bakery", nil)

	_, err := repo.MergeMetadata(entry.Id, map[string]any{"theme": "space", "length_m": 12})
	require.NoError(t, err)
	merged, err := repo.MergeMetadata(entry.Id, map[string]any{"theme": nil, "music": true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"length_m":12,"music":true}`, string(merged.Metadata))
}

func TestMergeMetadataIntoNull(t *testing.T) {
	requireDB(t)
	repo := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	entry, err := repo.Save(&Entry{EventId: parade.Id, OrganizationName: "Bakery", Metadata: datatypes.JSON("null")})
	require.NoError(t, err)

	merged, err := repo.MergeMetadata(entry.Id, map[string]any{"theme": "space"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"space"}`, string(merged.Metadata))
}

func TestSaveScoreKeepsNullsApart(t *testing.T) {
	requireDB(t)
	repo := NewScoreRepository(db)
	parade := createEvent(t, "Spring Parade")
	entry := createEntry(t, parade.Id, "Bakery", intPtr(1))
	judge := createJudge(t, parade.Id, "Alice")
	taste := createCategory(t, parade.Id, "Taste", 1)
	music := createCategory(t, parade.Id, "Music", 2)
	theme := createCategory(t, parade.Id, "Theme", 3)
	categoryIds := []int{taste.Id, music.Id, theme.Id}

	score, err := repo.SaveScore(&ScoreWrite{JudgeId: judge.Id, EntryId: entry.Id, Values: map[int]*int{taste.Id: intPtr(5)}, CategoryIds: categoryIds})
	require.NoError(t, err)
	assert.Equal(t, 5, score.Total)
	assert.Len(t, score.Items, 3)

	score, err = repo.SaveScore(&ScoreWrite{JudgeId: judge.Id, EntryId: entry.Id, Values: map[int]*int{music.Id: intPtr(0)}, CategoryIds: categoryIds})
	require.NoError(t, err)
	assert.Equal(t, 5, score.Total)

	score, err = repo.SaveScore(&ScoreWrite{JudgeId: judge.Id, EntryId: entry.Id, Values: map[int]*int{taste.Id: nil, theme.Id: intPtr(7)}, CategoryIds: categoryIds})
	require.NoError(t, err)
	assert.Equal(t, 7, score.Total)

	stored, err := repo.GetScore(judge.Id, entry.Id)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Total)
	values := make(map[int]*int)
	for _, item := range stored.Items {
		values[item.CategoryId] = item.Value
	}
	assert.Nil(t, values[taste.Id])
	require.NotNil(t, values[music.Id])
	assert.Equal(t, 0, *values[music.Id])
	assert.Equal(t, 7, *values[theme.Id])

	scored, err := NewCategoryRepository(db).CountScoredItems(music.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, scored)
}

func TestSaveScoreRejectedAfterSubmit(t *testing.T) {
	requireDB(t)
	scores := NewScoreRepository(db)
	judges := NewJudgeRepository(db)
	parade := createEvent(t, "Spring Parade")
	entry := createEntry(t, parade.Id, "Bakery", intPtr(1))
	judge := createJudge(t, parade.Id, "Alice")
	taste := createCategory(t, parade.Id, "Taste", 1)
	write := &ScoreWrite{JudgeId: judge.Id, EntryId: entry.Id, Values: map[int]*int{taste.Id: intPtr(4)}, CategoryIds: []int{taste.Id}}

	submitted, err := judges.SetSubmitted(judge.Id, true)
	require.NoError(t, err)
	assert.True(t, submitted.Submitted)
	assert.NotNil(t, submitted.SubmittedAt)

	_, err = scores.SaveScore(write)
	assert.ErrorIs(t, err, ErrJudgeSubmitted)

	unlocked, err := judges.SetSubmitted(judge.Id, false)
	require.NoError(t, err)
	assert.Nil(t, unlocked.SubmittedAt)
	_, err = scores.SaveScore(write)
	assert.NoError(t, err)
}

func TestSubmitVerifiesStoredScores(t *testing.T) {
	requireDB(t)
	judges := NewJudgeRepository(db)
	parade := createEvent(t, "Spring Parade")
	entry := createEntry(t, parade.Id, "Bakery", intPtr(1))
	judge := createJudge(t, parade.Id, "Alice")
	taste := createCategory(t, parade.Id, "Taste", 1)
	_, err := NewScoreRepository(db).SaveScore(&ScoreWrite{JudgeId: judge.Id, EntryId: entry.Id, Values: map[int]*int{taste.Id: intPtr(6)}, CategoryIds: []int{taste.Id}})
	require.NoError(t, err)

	incomplete := errors.New("incomplete")
	var seen []*Score
	_, err = judges.Submit(judge.Id, func(locked *Judge, scores []*Score) error {
		seen = scores
		return incomplete
	})
	assert.ErrorIs(t, err, incomplete)
	require.Len(t, seen, 1)
	require.Len(t, seen[0].Items, 1)
	assert.Equal(t, 6, *seen[0].Items[0].Value)
	stored, err := judges.GetJudgeById(judge.Id)
	require.NoError(t, err)
	assert.False(t, stored.Submitted)

	submitted, err := judges.Submit(judge.Id, func(locked *Judge, scores []*Score) error { return nil })
	require.NoError(t, err)
	assert.True(t, submitted.Submitted)
	assert.NotNil(t, submitted.SubmittedAt)
}

func TestDeleteUnscored(t *testing.T) {
	requireDB(t)
	entries := NewEntryRepository(db)
	parade := createEvent(t, "Spring Parade")
	scored := createEntry(t, parade.Id, "Bakery", intPtr(1))
	unscored := createEntry(t, parade.Id, "Choir", intPtr(2))
	judge := createJudge(t, parade.Id, "Alice")
	taste := createCategory(t, parade.Id, "Taste", 1)
	_, err := NewScoreRepository(db).SaveScore(&ScoreWrite{JudgeId: judge.Id, EntryId: scored.Id, Values: map[int]*int{taste.Id: intPtr(3)}, CategoryIds: []int{taste.Id}})
	require.NoError(t, err)

	assert.ErrorIs(t, entries.DeleteUnscored(scored.Id), ErrEntryHasScores)
	assert.NoError(t, entries.DeleteUnscored(unscored.Id))
	_, err = entries.GetEntryById(unscored.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := NewJudgeRepository(db).CountScores(judge.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestReorderCategories(t *testing.T) {
	requireDB(t)
	repo := NewCategoryRepository(db)
	parade := createEvent(t, "Spring Parade")
	a := createCategory(t, parade.Id, "Taste", 1)
	b := createCategory(t, parade.Id, "Music", 2)

	require.NoError(t, repo.Reorder(parade.Id, []int{b.Id, a.Id}))
	categories, err := repo.GetCategoriesForEvent(parade.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Music", "Taste"}, utils.Map(categories, func(c *Category) string { return c.Name }))

	_, err = repo.SaveCategory(&Category{EventId: parade.Id, Name: "Taste", MaxScore: 10})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateCategoryAddsNullItemsToExistingScores(t *testing.T) {
	requireDB(t)
	repo := NewCategoryRepository(db)
	scores := NewScoreRepository(db)
	parade := createEvent(t, "Spring Parade")
	other := createEvent(t, "Harvest Parade")
	entry := createEntry(t, parade.Id, "Bakery", intPtr(1))
	elsewhere := createEntry(t, other.Id, "Choir", intPtr(1))
	judge := createJudge(t, parade.Id, "Alice")
	otherJudge := createJudge(t, other.Id, "Bob")
	taste := createCategory(t, parade.Id, "Taste", 1)
	otherTaste := createCategory(t, other.Id, "Taste", 1)
	_, err := scores.SaveScore(&ScoreWrite{JudgeId: judge.Id, EntryId: entry.Id, Values: map[int]*int{taste.Id: intPtr(4)}, CategoryIds: []int{taste.Id}})
	require.NoError(t, err)
	_, err = scores.SaveScore(&ScoreWrite{JudgeId: otherJudge.Id, EntryId: elsewhere.Id, Values: map[int]*int{otherTaste.Id: intPtr(2)}, CategoryIds: []int{otherTaste.Id}})
	require.NoError(t, err)

	music, err := repo.CreateCategory(&Category{EventId: parade.Id, Name: "Music", DisplayOrder: 2, MaxScore: 10})
	require.NoError(t, err)
	require.NotZero(t, music.Id)

	score, err := scores.GetScore(judge.Id, entry.Id)
	require.NoError(t, err)
	require.Len(t, score.Items, 2)
	values := make(map[int]*int)
	for _, item := range score.Items {
		values[item.CategoryId] = item.Value
	}
	require.Contains(t, values, music.Id)
	assert.Nil(t, values[music.Id])
	assert.Equal(t, 4, *values[taste.Id])
	assert.Equal(t, 4, score.Total)

	untouched, err := scores.GetScore(otherJudge.Id, elsewhere.Id)
	require.NoError(t, err)
	assert.Len(t, untouched.Items, 1)
}

func TestCreateCategoryWithoutScores(t *testing.T) {
	requireDB(t)
	parade := createEvent(t, "Spring Parade")

	category, err := NewCategoryRepository(db).CreateCategory(&Category{EventId: parade.Id, Name: "Taste", DisplayOrder: 1, MaxScore: 10})
	require.NoError(t, err)
	assert.NotZero(t, category.Id)
}

func TestCategoryNamesAreUniqueIgnoringCase(t *testing.T) {
	requireDB(t)
	repo := NewCategoryRepository(db)
	parade := createEvent(t, "Spring Parade")
	createCategory(t, parade.Id, "Taste", 1)

	_, err := repo.CreateCategory(&Category{EventId: parade.Id, Name: "taste", DisplayOrder: 2, MaxScore: 10})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
