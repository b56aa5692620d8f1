package progression

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhanushlnaik/mimisanv2/internal/domain"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, int64(155), XPForLevel(1))
	assert.Equal(t, int64(220), XPForLevel(2))
	assert.Equal(t, int64(1100), XPForLevel(10))

	for l := int64(1); l < 200; l++ {
		assert.Greater(t, XPForLevel(l+1), XPForLevel(l))
	}
}

func TestApplyXP(t *testing.T) {
	tests := []struct {
		name      string
		level, xp int64
		add       int64
		wantLevel int64
		wantXP    int64
		wantUp    bool
	}{
		{"below threshold", 1, 100, 20, 1, 120, false},
		{"crosses with carry", 1, 140, 20, 2, 5, true},
		{"exact threshold", 1, 150, 5, 2, 0, true},
		{"no cascade", 1, 0, 1000, 2, 845, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &domain.LevelRecord{Level: tt.level, XP: tt.xp}
			up := applyXP(rec, tt.add)
			assert.Equal(t, tt.wantUp, up)
			assert.Equal(t, tt.wantLevel, rec.Level)
			assert.Equal(t, tt.wantXP, rec.XP)
		})
	}
}

func TestApplyGlobalXP_Cascades(t *testing.T) {
	p := domain.NewGlobalProfile("u")
	// 155 + 220 + 295 = 670 leaves level 3 with 10 to spare
	up := applyGlobalXP(p, big.NewInt(680))
	assert.True(t, up)
	assert.Equal(t, int64(4), p.GlobalLevel)
	assert.Equal(t, int64(10), p.GlobalXP.Int64())

	up = applyGlobalXP(p, big.NewInt(5))
	assert.False(t, up)
	assert.Equal(t, int64(15), p.GlobalXP.Int64())
}
