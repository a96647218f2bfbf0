package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/careernav/backend/internal/models"
)

func TestAwardPointsAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	user := &models.User{Email: "g@example.com", PasswordHash: "x", FullName: "G"}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, svc.AwardPoints(db, user.ID, 100))
	require.NoError(t, svc.AwardPoints(db, user.ID, 200))

	var after models.User
	require.NoError(t, db.First(&after, user.ID).Error)
	assert.Equal(t, 300, after.Points)
}

func TestAddBadgeOrderedAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	user := &models.User{Email: "b@example.com", PasswordHash: "x", FullName: "B", Badges: datatypes.JSON([]byte("[]"))}
	require.NoError(t, db.Create(user).Error)

	require.NoError(t, svc.AddBadge(db, user.ID, BadgeFirstAssessment))
	require.NoError(t, svc.AddBadge(db, user.ID, BadgeCourseGraduate))
	require.NoError(t, svc.AddBadge(db, user.ID, BadgeFirstAssessment))

	badges, err := svc.Badges(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{BadgeFirstAssessment, BadgeCourseGraduate}, badges)
}

func TestBadgesEmptyByDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	// No explicit badges column value at all.
	user := &models.User{Email: "n@example.com", PasswordHash: "x", FullName: "N"}
	require.NoError(t, db.Create(user).Error)

	badges, err := svc.Badges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, badges)
}
