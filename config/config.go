package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// ParallaxConfig contains the pointer-driven camera constants
type ParallaxConfig struct {
	Ease           float64 // Fraction of the remaining distance closed per frame
	TimeScale      float64 // Multiplier applied to elapsed milliseconds
	FloatAmplitude float64 // Vertical idle drift in pixels (sin)
	SwayAmplitude  float64 // Horizontal idle drift in pixels (cos)
	SwayFrequency  float64 // Sway runs this much faster than float
	OffsetScaleX   float64 // Pixels of translation per unit of pointer ratio
	OffsetScaleY   float64
	TiltScaleX     float64 // Degrees of rotateX per unit of vertical ratio
	TiltScaleY     float64 // Degrees of rotateY per unit of horizontal ratio
	Perspective    float64 // Shear applied per radian of rotation when projecting to 2D
}

// SceneConfig contains composition settings for the tilted scene image
type SceneConfig struct {
	Inset           float64 // Scene image overhangs the frame by this fraction on each side
	Scale           float64 // Additional zoom applied to the scene image
	BackgroundColor color.RGBA
	FrameBorder     color.RGBA
	FrameGlow       color.RGBA
	VignetteColor   color.RGBA
}

// RainConfig contains rain layer configuration
type RainConfig struct {
	DropLength float64 // Base streak length in pixels before Scale
	DropWidth  float64
	Slant      float64 // Horizontal drift per pixel of fall
	Color      color.RGBA
}

// AudioConfig contains the generated rain ambience settings
type AudioConfig struct {
	SampleRate   int
	Volume       float64 // Target volume after fade in
	FadeInFrames int
	Muted        bool
	Seed         uint32
	Cutoff       float64 // Lowpass coefficient for the hiss
	DropRate     float64 // Droplets per second
	SwellPeriod  float64 // Seconds
}

// AnimationConfig contains looping tween durations in seconds
type AnimationConfig struct {
	LensSweep     float32
	HeroStride    float32
	TrackingSweep float32
	SignPulse     float32
	StrideAngle   float64 // Max torso sway in degrees
}

// SkylineConfig contains procedural building settings
type SkylineConfig struct {
	Towers        int
	MinTowerWidth float64 // Fractions of the layer width
	MaxTowerWidth float64
	MinHeight     float64 // Fractions of the layer height
	MaxHeight     float64
	WindowSize    float64
	WindowGap     float64
	WindowChance  float64
}

// UIConfig contains overlay and caption styling
type UIConfig struct {
	ChipFill         color.RGBA
	ChipBorder       color.RGBA
	ChipText         color.RGBA
	ChipPaddingX     float64
	ChipPaddingY     float64
	ChipGap          float64
	OverlayMargin    float64
	TrackInset       float64
	TrackHeight      float64
	TrackBackground  color.RGBA
	TrackLabelColor  color.RGBA
	CaptionTagColor  color.RGBA
	CaptionHeading   color.RGBA
	CaptionBody      color.RGBA
	CaptionWidth     float64 // Body text wraps at this many pixels
	SignTextColor    color.RGBA
	SignFill         color.RGBA
	SignBorder       color.RGBA
	HUDFontSize      float64
	SignFontSize     float64
	HeadingFontSize  float64
	BodyFontSize     float64
	TagFontSize      float64
	DebugPanelColor  color.RGBA
	DebugTextColor   color.RGBA
	DebugPanelWidth  float64
	DebugPanelHeight float64
}

// DebugConfig contains command-line options
type DebugConfig struct {
	Overlay    bool   // Show camera readout
	Drops      int    // Rain drop override, negative keeps the scene value
	ScenePath  string // On-disk scene file overriding the embedded one
	Watch      bool   // Hot reload the scene file
	Fullscreen bool
}

// Global configuration instances
var C *Config
var Parallax ParallaxConfig
var Scene SceneConfig
var Rain RainConfig
var Audio AudioConfig
var Animation AnimationConfig
var Skyline SkylineConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Slate950    = color.RGBA{R: 2, G: 6, B: 23, A: 255}
	Slate900    = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	Cyan200     = color.RGBA{R: 165, G: 243, B: 252, A: 255}
	Pink400     = color.RGBA{R: 244, G: 114, B: 182, A: 255}
	Sky400      = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	Cyan100     = color.RGBA{R: 207, G: 250, B: 254, A: 255}
	Cyan700     = color.RGBA{R: 14, G: 116, B: 144, A: 255}
	Black       = color.RGBA{A: 255}
	Transparent = color.RGBA{}
)

// Fade returns c with its alpha scaled by a, premultiplied as ebiten expects.
func Fade(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(float64(c.A)*a + 0.5),
	}
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 640,
		TPS:    60,
		Title:  "Neon Reverie",
	}

	Parallax = ParallaxConfig{
		Ease:           0.08,
		TimeScale:      0.00035,
		FloatAmplitude: 3.5,
		SwayAmplitude:  2.75,
		SwayFrequency:  1.4,
		OffsetScaleX:   36,
		OffsetScaleY:   26,
		TiltScaleX:     -4.5,
		TiltScaleY:     7.5,
		Perspective:    0.35,
	}

	Scene = SceneConfig{
		Inset:           0.12,
		Scale:           1.05,
		BackgroundColor: Slate950,
		FrameBorder:     Fade(Cyan100, 0.1),
		FrameGlow:       Fade(Cyan700, 0.45),
		VignetteColor:   Slate950,
	}

	Rain = RainConfig{
		DropLength: 112, // h-28
		DropWidth:  1,
		Slant:      0.08,
		Color:      Fade(Cyan200, 0.9),
	}

	Audio = AudioConfig{
		SampleRate:   44100,
		Volume:       0.35,
		FadeInFrames: 150,
		Seed:         0x5eed,
		Cutoff:       0.08,
		DropRate:     9,
		SwellPeriod:  7,
	}

	Animation = AnimationConfig{
		LensSweep:     6.0,
		HeroStride:    1.6,
		TrackingSweep: 3.2,
		SignPulse:     2.4,
		StrideAngle:   2.5,
	}

	Skyline = SkylineConfig{
		Towers:        14,
		MinTowerWidth: 0.04,
		MaxTowerWidth: 0.11,
		MinHeight:     0.35,
		MaxHeight:     0.95,
		WindowSize:    3,
		WindowGap:     7,
		WindowChance:  0.28,
	}

	UI = UIConfig{
		ChipFill:         Fade(White, 0.05),
		ChipBorder:       Fade(White, 0.2),
		ChipText:         Fade(White, 0.6),
		ChipPaddingX:     16,
		ChipPaddingY:     8,
		ChipGap:          12,
		OverlayMargin:    24,
		TrackInset:       80,
		TrackHeight:      4,
		TrackBackground:  Fade(White, 0.2),
		TrackLabelColor:  Fade(White, 0.7),
		CaptionTagColor:  Fade(Cyan200, 0.8),
		CaptionHeading:   White,
		CaptionBody:      Fade(White, 0.7),
		CaptionWidth:     520,
		SignTextColor:    Fade(White, 0.8),
		SignFill:         Fade(Slate900, 0.4),
		SignBorder:       Fade(White, 0.1),
		HUDFontSize:      11,
		SignFontSize:     14,
		HeadingFontSize:  40,
		BodyFontSize:     15,
		TagFontSize:      12,
		DebugPanelColor:  Fade(Black, 0.7),
		DebugTextColor:   Cyan200,
		DebugPanelWidth:  420,
		DebugPanelHeight: 96,
	}

	// Defaults, overridden by CLI flags
	Debug = DebugConfig{
		Overlay: false,
		Drops:   -1,
		Watch:   false,
	}
}
