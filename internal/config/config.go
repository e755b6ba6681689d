// Package config provides YAML-based configuration loading for the rules
// engine. Every rules constant (speeds, bounds, probabilities, reward
// tables, timer intervals) lives here instead of in the engine.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the game rules.
type BreakoutConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BrickConfig     `yaml:"bricks"`
	Bonus     BonusConfig     `yaml:"bonus"`
}

// PlayfieldConfig defines the logical playfield in pixels.
type PlayfieldConfig struct {
	Width      float64 `yaml:"width" env:"NEXUS_PLAYFIELD_WIDTH"`
	Height     float64 `yaml:"height" env:"NEXUS_PLAYFIELD_HEIGHT"`
	PaddleY    float64 `yaml:"paddle_y"`
	BallStartY float64 `yaml:"ball_start_y"`
}

// BallConfig defines ball speeds and the speed modifier stack.
type BallConfig struct {
	BaseSpeed     float64 `yaml:"base_speed" env:"NEXUS_BALL_BASE_SPEED"`
	LaunchSpeed   float64 `yaml:"launch_speed"`
	LaunchSpread  int     `yaml:"launch_spread"`  // launch vx drawn from [-spread, spread]
	SpeedStep     float64 `yaml:"speed_step"`     // multiplier added per speed level
	MinSpeedLevel int     `yaml:"min_speed_level"`
	MaxSpeedLevel int     `yaml:"max_speed_level"`
	Radius        float64 `yaml:"radius"`
	Scale         float64 `yaml:"scale"`
	MultiCount    int     `yaml:"multi_ball_count" env:"NEXUS_MULTI_BALL_COUNT"`
	MultiArcMin   int     `yaml:"multi_ball_arc_min"` // degrees
	MultiArcMax   int     `yaml:"multi_ball_arc_max"` // degrees
	MultiOffsetY  float64 `yaml:"multi_ball_offset_y"`
}

// PaddleConfig defines paddle sizing and bounce shaping.
type PaddleConfig struct {
	BaseWidth    float64 `yaml:"base_width"`
	WidthStep    float64 `yaml:"width_step"`
	MinSizeLevel int     `yaml:"min_size_level"`
	MaxSizeLevel int     `yaml:"max_size_level"`
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	Height       float64 `yaml:"height"`
	MaxBounce    float64 `yaml:"max_bounce"`
	KickFactor   float64 `yaml:"kick_factor"`
	KickLimit    float64 `yaml:"kick_limit"`
	CenterZone   float64 `yaml:"center_zone"`
	CenterJitter int     `yaml:"center_jitter"`
}

// WidthAt returns the paddle width at the given size level, clamped to
// [MinWidth, MaxWidth].
func (p PaddleConfig) WidthAt(level int) float64 {
	w := p.BaseWidth + float64(level)*p.WidthStep
	return min(max(w, p.MinWidth), p.MaxWidth)
}

// BrickConfig defines durability, scoring and grid layout.
type BrickConfig struct {
	Points     int     `yaml:"points"`
	GoldenHP   int     `yaml:"golden_hp" env:"NEXUS_GOLDEN_HP"`
	SilverHP   int     `yaml:"silver_hp"`
	FatiguedAt int     `yaml:"fatigued_at"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Spacing    float64 `yaml:"spacing"`
	OffsetY    float64 `yaml:"offset_y"`
}

// BonusConfig defines bonus drops, the currency timer and rewards.
type BonusConfig struct {
	DropChance            float64 `yaml:"drop_chance" env:"NEXUS_DROP_CHANCE"`
	DropSpeed             float64 `yaml:"drop_speed"`
	ModifierPoints        int     `yaml:"modifier_points"`
	Size                  float64 `yaml:"size"`
	CurrencyRewards       []int   `yaml:"currency_rewards" env:"NEXUS_CURRENCY_REWARDS"`
	CurrencyChance        float64 `yaml:"currency_chance" env:"NEXUS_CURRENCY_CHANCE"`
	CurrencyCap           int     `yaml:"currency_cap"`
	CurrencySpeed         float64 `yaml:"currency_speed"`
	CurrencySpawnMinX     int     `yaml:"currency_spawn_min_x"`
	CurrencySpawnMaxX     int     `yaml:"currency_spawn_max_x"`
	CurrencySingleCatch   bool    `yaml:"currency_single_catch"`
	TimerMinSeconds       int     `yaml:"timer_min_seconds"`
	TimerMaxSeconds       int     `yaml:"timer_max_seconds"`
	TimerOnlyWhilePlaying bool    `yaml:"timer_only_while_playing" env:"NEXUS_TIMER_ONLY_WHILE_PLAYING"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate rejects configurations the engine cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Ball.BaseSpeed > 0, "ball.base_speed must be positive")
	check(c.Ball.MinSpeedLevel <= c.Ball.MaxSpeedLevel, "ball speed levels inverted (%d > %d)", c.Ball.MinSpeedLevel, c.Ball.MaxSpeedLevel)
	check(c.Ball.MultiArcMin <= c.Ball.MultiArcMax, "ball multi-ball arc inverted")
	check(c.Ball.MultiCount >= 0, "ball.multi_ball_count must not be negative")
	check(c.Paddle.MinSizeLevel <= 0 && c.Paddle.MaxSizeLevel >= 0, "paddle size levels must include 0")
	check(c.Paddle.MinWidth > 0 && c.Paddle.MinWidth <= c.Paddle.MaxWidth, "paddle width bounds invalid")
	check(c.Paddle.MaxWidth < c.Playfield.Width, "paddle.max_width must fit the playfield")
	for k := c.Paddle.MinSizeLevel; k < c.Paddle.MaxSizeLevel; k++ {
		if c.Paddle.WidthAt(k) >= c.Paddle.WidthAt(k+1) {
			check(false, "paddle size levels %d and %d share width %v", k, k+1, c.Paddle.WidthAt(k))
			break
		}
	}
	check(c.Bricks.GoldenHP != 0 && c.Bricks.SilverHP != 0, "brick hit points must be non-zero")
	check(c.Bonus.DropChance >= 0 && c.Bonus.DropChance <= 1, "bonus.drop_chance must be in [0,1]")
	check(c.Bonus.CurrencyChance >= 0 && c.Bonus.CurrencyChance <= 1, "bonus.currency_chance must be in [0,1]")
	check(len(c.Bonus.CurrencyRewards) > 0, "bonus.currency_rewards must not be empty")
	check(c.Bonus.CurrencySpawnMinX <= c.Bonus.CurrencySpawnMaxX, "bonus currency spawn range inverted")
	check(c.Bonus.TimerMinSeconds > 0 && c.Bonus.TimerMinSeconds <= c.Bonus.TimerMaxSeconds, "bonus timer interval invalid")

	return errors.Join(errs...)
}
