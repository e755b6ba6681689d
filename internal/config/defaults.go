package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default rules configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{
			Width:      800,
			Height:     600,
			PaddleY:    550,
			BallStartY: 530,
		},
		Ball: BallConfig{
			BaseSpeed:     490,
			LaunchSpeed:   300,
			LaunchSpread:  100,
			SpeedStep:     0.4,
			MinSpeedLevel: 0,
			MaxSpeedLevel: 2,
			Radius:        8,
			Scale:         0.5,
			MultiCount:    2,
			MultiArcMin:   210,
			MultiArcMax:   330,
			MultiOffsetY:  30,
		},
		Paddle: PaddleConfig{
			BaseWidth:    120,
			WidthStep:    40,
			MinSizeLevel: -2,
			MaxSizeLevel: 2,
			MinWidth:     60,
			MaxWidth:     200,
			Height:       24,
			MaxBounce:    400,
			KickFactor:   6,
			KickLimit:    60,
			CenterZone:   5,
			CenterJitter: 10,
		},
		Bricks: BrickConfig{
			Points:     10,
			GoldenHP:   15,
			SilverHP:   2,
			FatiguedAt: 5,
			Width:      48,
			Height:     24,
			Spacing:    2,
			OffsetY:    100,
		},
		Bonus: BonusConfig{
			DropChance:            0.10,
			DropSpeed:             100,
			ModifierPoints:        50,
			Size:                  24,
			CurrencyRewards:       []int{40, 60, 80, 120, 160, 200},
			CurrencyChance:        0.30,
			CurrencyCap:           3,
			CurrencySpeed:         150,
			CurrencySpawnMinX:     100,
			CurrencySpawnMaxX:     700,
			CurrencySingleCatch:   false,
			TimerMinSeconds:       20,
			TimerMaxSeconds:       35,
			TimerOnlyWhilePlaying: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
