package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameRequest struct {
	Game string `json:"game" validate:"required,casino_game"`
	Rank string `json:"rank" validate:"omitempty,dungeon_rank"`
}

type amountRequest struct {
	Amount string `json:"amount" validate:"required,positive_bigint"`
}

func TestValidator_CasinoGame(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		game    string
		wantErr bool
	}{
		{"coinflip", "coinflip", false},
		{"slots", "slots", false},
		{"mixed case", "Slots", false},
		{"unknown game", "roulette", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(gameRequest{Game: tt.game})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_DungeonRank(t *testing.T) {
	v := GetValidator()

	for _, rank := range []string{"E", "c", "B", "a", "S"} {
		assert.NoError(t, v.ValidateStruct(gameRequest{Game: "slots", Rank: rank}), rank)
	}
	for _, rank := range []string{"D", "SS", "1"} {
		assert.Error(t, v.ValidateStruct(gameRequest{Game: "slots", Rank: rank}), rank)
	}
}

func TestValidator_PositiveBigInt(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(amountRequest{Amount: "1"}))
	assert.NoError(t, v.ValidateStruct(amountRequest{Amount: "123456789012345678901234567890"}))
	assert.Error(t, v.ValidateStruct(amountRequest{Amount: "0"}))
	assert.Error(t, v.ValidateStruct(amountRequest{Amount: "-5"}))
	assert.Error(t, v.ValidateStruct(amountRequest{Amount: "1.5"}))
	assert.Error(t, v.ValidateStruct(amountRequest{Amount: "lots"}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(gameRequest{Game: "roulette", Rank: "Z"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be one of coinflip, slots", fields["game"])
	assert.Equal(t, "Must be one of E, C, B, A, S", fields["rank"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
