package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("dockertest.NewPool -> %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_PASSWORD=secret",
		"POSTGRES_DB=federation_test",
	})
	if err != nil {
		log.Fatalf("pool.Run -> %v", err)
	}

	if err = pool.Retry(func() error {
		dsn := fmt.Sprintf(
			"host=localhost user=postgres password=secret dbname=federation_test port=%s sslmode=disable",
			resource.GetPort("5432/tcp"),
		)

		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}

		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("pool.Retry -> %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("InitTables -> %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("pool.Purge -> %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()

	if testDB == nil {
		t.Skip("postgres container not started in -short mode")
	}
}

func TestParticipantDAO_InsertAndFind(t *testing.T) {
	requireDB(t)
	d := NewParticipantDAO(testDB)

	inserted, err := d.Insert(context.Background(), Participant{
		Username: "dao-pilot-one",
		Avatar:   "🚁",
		Rating:   1200,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, inserted.ID)
	assert.False(t, inserted.CreatedAt.IsZero())

	found, err := d.FindByID(context.Background(), inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "dao-pilot-one", found.Username)
	assert.Equal(t, 1200, found.Rating)
}

func TestParticipantDAO_DuplicateUsername(t *testing.T) {
	requireDB(t)
	d := NewParticipantDAO(testDB)

	_, err := d.Insert(context.Background(), Participant{Username: "dao-dup", Avatar: "🚁", Rating: 1000})
	require.NoError(t, err)

	_, err = d.Insert(context.Background(), Participant{Username: "dao-dup", Avatar: "🚁", Rating: 1000})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestParticipantDAO_FindTopOrdering(t *testing.T) {
	requireDB(t)
	d := NewParticipantDAO(testDB)

	seed := []Participant{
		{Username: "dao-top-zulu", Avatar: "🚁", Rating: 2000},
		{Username: "dao-top-alpha", Avatar: "🚁", Rating: 2000},
		{Username: "dao-top-mike", Avatar: "🚁", Rating: 2100},
	}
	for _, p := range seed {
		_, err := d.Insert(context.Background(), p)
		require.NoError(t, err)
	}

	top, err := d.FindTop(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "dao-top-mike", top[0].Username)
	assert.Equal(t, "dao-top-alpha", top[1].Username, "ties break by username")
	assert.Equal(t, "dao-top-zulu", top[2].Username)
}

func TestParticipantDAO_Update(t *testing.T) {
	requireDB(t)
	d := NewParticipantDAO(testDB)

	inserted, err := d.Insert(context.Background(), Participant{Username: "dao-upd", Avatar: "🚁", Rating: 1000})
	require.NoError(t, err)

	updated, err := d.Update(context.Background(), inserted.ID, map[string]interface{}{
		"rating": 1555,
		"wins":   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1555, updated.Rating)
	assert.Equal(t, 2, updated.Wins)
	assert.Equal(t, "dao-upd", updated.Username)

	_, err = d.Update(context.Background(), uuid.New(), map[string]interface{}{"rating": 1})
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantDAO_DeleteTwice(t *testing.T) {
	requireDB(t)
	d := NewParticipantDAO(testDB)

	inserted, err := d.Insert(context.Background(), Participant{Username: "dao-del", Avatar: "🚁", Rating: 1000})
	require.NoError(t, err)

	require.NoError(t, d.Delete(context.Background(), inserted.ID))
	assert.ErrorIs(t, d.Delete(context.Background(), inserted.ID), ErrParticipantNotFound)
}

func TestEventDAO_FindUpcoming(t *testing.T) {
	requireDB(t)
	d := NewEventDAO(testDB)

	now := time.Now()
	seed := map[string]time.Time{
		"dao-event-past":   now.AddDate(0, 0, -30),
		"dao-event-today":  now,
		"dao-event-future": now.AddDate(0, 0, 30),
	}
	for title, date := range seed {
		_, err := d.Insert(context.Background(), Event{
			Title:     title,
			EventDate: date,
			Location:  "Yakutsk",
			Status:    "preparation",
		})
		require.NoError(t, err)
	}

	upcoming, err := d.FindUpcoming(context.Background(), now, 100)
	require.NoError(t, err)

	titles := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		titles = append(titles, e.Title)
	}
	assert.Contains(t, titles, "dao-event-today")
	assert.Contains(t, titles, "dao-event-future")
	assert.NotContains(t, titles, "dao-event-past")
}

func TestRegistrationDAO_PairConflict(t *testing.T) {
	requireDB(t)

	event, err := NewEventDAO(testDB).Insert(context.Background(), Event{
		Title:     "dao-reg-event",
		EventDate: time.Now().AddDate(0, 0, 7),
		Location:  "Yakutsk",
		Status:    "registration_open",
	})
	require.NoError(t, err)

	participant, err := NewParticipantDAO(testDB).Insert(context.Background(), Participant{
		Username: "dao-reg-pilot",
		Avatar:   "🚁",
		Rating:   1000,
	})
	require.NoError(t, err)

	d := NewRegistrationDAO(testDB)

	first, err := d.Insert(context.Background(), EventRegistration{
		EventID:       event.ID,
		ParticipantID: participant.ID,
		Status:        "registered",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)

	_, err = d.Insert(context.Background(), EventRegistration{
		EventID:       event.ID,
		ParticipantID: participant.ID,
		Status:        "registered",
	})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	regs, err := d.FindByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "dao-reg-pilot", regs[0].Participant.Username)
}

func TestRegistrationDAO_UnknownParticipant(t *testing.T) {
	requireDB(t)

	event, err := NewEventDAO(testDB).Insert(context.Background(), Event{
		Title:     "dao-reg-fk-event",
		EventDate: time.Now().AddDate(0, 0, 7),
		Location:  "Yakutsk",
		Status:    "registration_open",
	})
	require.NoError(t, err)

	_, err = NewRegistrationDAO(testDB).Insert(context.Background(), EventRegistration{
		EventID:       event.ID,
		ParticipantID: uuid.New(),
		Status:        "registered",
	})
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestNewsDAO_PublishLifecycle(t *testing.T) {
	requireDB(t)
	d := NewNewsDAO(testDB)

	draft, err := d.Insert(context.Background(), News{
		Title:   "dao-news-draft",
		Content: "body",
	})
	require.NoError(t, err)
	require.False(t, draft.Published)
	require.Nil(t, draft.PublishedAt)

	_, err = d.FindPublishedByID(context.Background(), draft.ID)
	assert.ErrorIs(t, err, ErrNewsNotFound, "drafts are invisible to the public lookup")

	firstStamp := time.Now().Add(-time.Hour).Truncate(time.Second)
	published, err := d.Publish(context.Background(), draft.ID, firstStamp)
	require.NoError(t, err)
	assert.True(t, published.Published)
	require.NotNil(t, published.PublishedAt)
	assert.True(t, published.PublishedAt.Equal(firstStamp))

	secondStamp := time.Now().Truncate(time.Second)
	republished, err := d.Publish(context.Background(), draft.ID, secondStamp)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.True(t, republished.PublishedAt.After(firstStamp), "re-publishing refreshes the stamp")

	visible, err := d.FindPublishedByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "dao-news-draft", visible.Title)
}
