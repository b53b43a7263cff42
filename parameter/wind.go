package parameter

// Wind speed tier boundaries (mph). Each tier selects a qualitatively
// different hand motion, from perfectly still to chaotic squirming.
const (
	WindCalmMax     = 2.0  // at or below: no motion at all
	WindLightMax    = 8.0  // gentle single-wave motion
	WindModerateMax = 18.0 // dual-frequency waves, amplitude grows with wind
	// above WindModerateMax: chaotic gusty motion
)

// Light tier: one sinusoid per axis, wave travels along the hand
const (
	LightWaveFreq  = 0.8
	LightAmplitude = 3.0
	LightYScale    = 0.5
	LightYFreqMult = 1.3
)

// Moderate tier: primary plus faster secondary wave at reduced weight
const (
	ModeratePrimaryFreq    = 1.5
	ModerateSecondaryFreq  = 2.8
	ModerateBaseAmplitude  = 6.0
	ModerateAmplitudeSlope = 0.8 // amplitude gain per mph above the light tier
	ModerateSecondaryWt    = 0.4
	ModerateYScale         = 0.6
	ModerateYSecondaryWt   = 0.3
)

// Strong tier: chaos factor saturates at WindChaosSaturation mph.
// The gust term scales with how much gusts exceed sustained wind.
const (
	WindChaosSaturation  = 35.0
	StrongBaseAmplitude  = 8.0
	StrongChaosAmplitude = 12.0
	StrongGustWeight     = 0.8
	StrongPrimaryFreqX   = 2.2
	StrongPrimaryFreqY   = 1.8
	StrongSecondaryFreqX = 4.1
	StrongSecondaryFreqY = 3.3
	StrongGustFreqX      = 8.5
	StrongGustFreqY      = 7.2
	StrongSecondaryWtX   = 0.6
	StrongSecondaryWtY   = 0.5
	StrongPrimaryYScale  = 0.7
	StrongGustYScale     = 0.4
	StrongJitterScale    = 2.0 // jitter stays small next to the periodic terms
)
