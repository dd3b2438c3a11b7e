package joiner_test

import (
	"testing"

	"github.com/elab4health-svg/health-tech-sub001/internal/joiner"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mainRecord(id string) models.GBAMainNormalized {
	return models.GBAMainNormalized{Raw: models.GBAMainRecord{ID: models.RespondentID(id)}}
}

func techRecord(id string, apps, wearables float64) models.GBATechNormalized {
	return models.GBATechNormalized{
		Raw:             models.GBATechRecord{ID: models.RespondentID(id)},
		HealthAppsHours: apps,
		WearablesHours:  wearables,
	}
}

func TestCombineHours(t *testing.T) {
	assert.Equal(t, 1.5, joiner.CombineHours(1, 30))
	assert.Equal(t, 0.25, joiner.CombineHours(0, 15))
	assert.Equal(t, 2.0, joiner.CombineHours(2, -5))
	assert.Equal(t, 0.0, joiner.CombineHours(-1, 0))
}

func TestJoinGBA_LeftJoinDefaultsToZero(t *testing.T) {
	main := []models.GBAMainNormalized{mainRecord("1"), mainRecord("2"), mainRecord("3")}
	tech := []models.GBATechNormalized{techRecord("3", 1.5, 0.5), techRecord("1", 2, 1)}

	joined := joiner.JoinGBA(main, tech)
	require.Len(t, joined, len(main))

	assert.Equal(t, models.RespondentID("1"), joined[0].Main.Raw.ID)
	assert.True(t, joined[0].Matched)
	assert.Equal(t, 3.0, joined[0].TotalTechHours)

	assert.Equal(t, models.RespondentID("2"), joined[1].Main.Raw.ID)
	assert.False(t, joined[1].Matched)
	assert.Equal(t, models.GBATechNormalized{}, joined[1].Tech)
	assert.Equal(t, 0.0, joined[1].HealthAppsHours)
	assert.Equal(t, 0.0, joined[1].WearablesHours)
	assert.Equal(t, 0.0, joined[1].TotalTechHours)

	assert.True(t, joined[2].Matched)
	assert.Equal(t, 2.0, joined[2].TotalTechHours)
}

func TestJoinGBA_NoSecondary(t *testing.T) {
	main := []models.GBAMainNormalized{mainRecord("a"), mainRecord("b")}

	joined := joiner.JoinGBA(main, nil)
	require.Len(t, joined, 2)
	for _, j := range joined {
		assert.False(t, j.Matched)
		assert.Equal(t, 0.0, j.TotalTechHours)
	}
	assert.Equal(t, 0.0, joiner.MatchRate(joined))
}

func TestJoinGBA_DuplicateSecondaryFirstWins(t *testing.T) {
	main := []models.GBAMainNormalized{mainRecord("1")}
	tech := []models.GBATechNormalized{techRecord("1", 1, 0), techRecord("1", 5, 5)}

	joined := joiner.JoinGBA(main, tech)
	require.Len(t, joined, 1)
	assert.Equal(t, 1.0, joined[0].HealthAppsHours)
}

func TestJoinGBA_EmptyPrimary(t *testing.T) {
	joined := joiner.JoinGBA(nil, []models.GBATechNormalized{techRecord("1", 1, 1)})
	assert.Empty(t, joined)
	assert.Equal(t, 0.0, joiner.MatchRate(joined))
}

func TestMatchRate(t *testing.T) {
	joined := joiner.JoinGBA(
		[]models.GBAMainNormalized{mainRecord("1"), mainRecord("2"), mainRecord("3")},
		[]models.GBATechNormalized{techRecord("2", 1, 1)},
	)
	assert.Equal(t, 33.3, joiner.MatchRate(joined))
}
