// Package face animates the desk toy's emotional state: which emotion is
// active, how open the eyes are, where the gaze points, and the bounce of
// the head. The state machine is time-driven; the frame loop calls Step
// with the current millisecond clock.
package face

import (
	"math"
	"math/rand"

	"desktoy/tone"
)

// Emotion identifies one facial expression preset.
type Emotion uint8

const (
	Normal Emotion = iota
	Happy
	Laughing
	Angry
	Sad
	Surprised
	Sleepy
	Love
	Birthday
	emotionCount
)

func (e Emotion) String() string {
	switch e {
	case Normal:
		return "NORMAL"
	case Happy:
		return "HAPPY"
	case Laughing:
		return "LAUGHING"
	case Angry:
		return "ANGRY"
	case Sad:
		return "SAD"
	case Surprised:
		return "SURPRISED"
	case Sleepy:
		return "SLEEPY"
	case Love:
		return "LOVE"
	case Birthday:
		return "BIRTHDAY"
	default:
		return "UNKNOWN"
	}
}

// cycle is the automatic emotion rotation.
var cycle = [...]Emotion{
	Normal, Happy, Laughing, Surprised, Love, Sleepy, Sad, Angry, Birthday,
}

// State is the animated face. Exported fields are read by the scene and
// the overlay each frame; they move toward per-emotion targets over time.
type State struct {
	LeftEyeOpen  float32
	RightEyeOpen float32
	LookX, LookY int

	BrowAngle  float32 // -1 inner-down to 1 inner-up
	BrowHeight float32 // pixel offset, negative is raised
	MouthOpen  float32
	MouthCurve float32 // -1 frown to 1 smile

	Bounce float32
	Shake  float32

	emotion        Emotion
	targetLeftEye  float32
	targetRightEye float32
	targetLookX    int
	targetLookY    int

	nextBlink   uint64
	nextLook    uint64
	nextEmotion uint64
	started     bool

	cycleIdx  int
	lastSound Emotion

	rng *rand.Rand
}

// NewState returns a face at rest, eyes open, showing Normal. The seed
// drives blink and gaze randomness.
func NewState(seed int64) *State {
	s := &State{
		LeftEyeOpen:    1,
		RightEyeOpen:   1,
		targetLeftEye:  1,
		targetRightEye: 1,
		lastSound:      emotionCount,
		rng:            rand.New(rand.NewSource(seed)),
	}
	s.applyPreset(Normal)
	return s
}

func (s *State) Emotion() Emotion { return s.emotion }

// Apply switches to an emotion and reports the sound effect to play.
// Re-applying the current emotion is silent so blinking can restore a
// preset without replaying its melody.
func (s *State) Apply(e Emotion) tone.Effect {
	s.applyPreset(e)
	if e == s.lastSound {
		return tone.EffectNone
	}
	s.lastSound = e
	return soundFor(e)
}

// Next skips to the following emotion in the rotation, as when the button
// is pressed, and reschedules the automatic change.
func (s *State) Next(now uint64) tone.Effect {
	e := cycle[s.cycleIdx]
	s.cycleIdx = (s.cycleIdx + 1) % len(cycle)
	s.nextEmotion = now + s.emotionDuration(e)
	return s.Apply(e)
}

// Step advances the animation to the given millisecond timestamp: eased
// eye and bounce motion, scheduled blinks, gaze wandering, and the
// automatic emotion rotation. It returns the sound effect for an emotion
// the rotation switched to, or EffectNone.
func (s *State) Step(now uint64) tone.Effect {
	if !s.started {
		s.started = true
		s.nextBlink = now + 3000
		s.nextLook = now + 2000
		s.nextEmotion = now + 3000
	}

	s.LeftEyeOpen = lerp(s.LeftEyeOpen, s.targetLeftEye, 0.3)
	s.RightEyeOpen = lerp(s.RightEyeOpen, s.targetRightEye, 0.3)

	if s.LookX != s.targetLookX {
		s.LookX += sign(s.targetLookX - s.LookX)
	}
	if s.LookY != s.targetLookY {
		s.LookY += sign(s.targetLookY - s.LookY)
	}

	if s.emotion == Laughing {
		s.Bounce = float32(math.Sin(float64(now)*0.02))*0.5 + 0.5
	} else {
		s.Bounce = lerp(s.Bounce, 0, 0.2)
	}
	s.Shake = lerp(s.Shake, 0, 0.15)

	if now >= s.nextBlink {
		if s.targetLeftEye > 0.5 && s.targetRightEye > 0.5 {
			s.targetLeftEye = 0
			s.targetRightEye = 0
			s.nextBlink = now + 100
		} else {
			s.applyPreset(s.emotion)
			s.nextBlink = now + 2500 + uint64(s.rng.Intn(4000))
		}
	}

	if now >= s.nextLook {
		s.targetLookX = s.rng.Intn(15) - 7
		s.targetLookY = s.rng.Intn(9) - 4
		s.nextLook = now + 800 + uint64(s.rng.Intn(2000))
	}

	if now >= s.nextEmotion {
		e := cycle[s.cycleIdx]
		s.cycleIdx = (s.cycleIdx + 1) % len(cycle)
		s.nextEmotion = now + s.emotionDuration(e)
		return s.Apply(e)
	}
	return tone.EffectNone
}

func (s *State) emotionDuration(e Emotion) uint64 {
	// Birthday holds long enough for the song.
	if e == Birthday {
		return 8000
	}
	return 3000 + uint64(s.rng.Intn(5000))
}

// applyPreset sets the per-emotion targets without touching sound state.
func (s *State) applyPreset(e Emotion) {
	s.emotion = e

	s.targetLeftEye = 1
	s.targetRightEye = 1
	s.BrowAngle = 0
	s.BrowHeight = 0
	s.MouthOpen = 0
	s.MouthCurve = 0
	s.Shake = 0

	switch e {
	case Normal:
		s.BrowAngle = -0.1
	case Happy:
		s.BrowHeight = -3
		s.BrowAngle = -0.3
		s.MouthCurve = 0.7
	case Laughing:
		s.targetLeftEye = 0.35
		s.targetRightEye = 0.35
		s.BrowHeight = -4
		s.BrowAngle = -0.4
		s.MouthCurve = 1
		s.MouthOpen = 0.8
	case Angry:
		s.BrowAngle = 1
		s.BrowHeight = 3
		s.MouthCurve = -0.5
	case Sad:
		s.BrowAngle = -0.9
		s.BrowHeight = -1
		s.targetLeftEye = 0.65
		s.targetRightEye = 0.65
		s.MouthCurve = -0.8
	case Surprised:
		s.BrowHeight = -7
		s.BrowAngle = -0.5
		s.MouthOpen = 1
		s.Shake = 1
	case Sleepy:
		s.targetLeftEye = 0.25
		s.targetRightEye = 0.25
		s.BrowAngle = -0.4
		s.BrowHeight = 2
	case Love:
		s.BrowHeight = -3
		s.BrowAngle = -0.4
		s.MouthCurve = 0.5
	case Birthday:
		s.BrowHeight = -4
		s.BrowAngle = -0.4
		s.targetLeftEye = 0.4
		s.targetRightEye = 0.4
		s.MouthCurve = 1
		s.MouthOpen = 0.7
	}
}

func soundFor(e Emotion) tone.Effect {
	switch e {
	case Happy:
		return tone.EffectHappy
	case Laughing:
		return tone.EffectLaughing
	case Angry:
		return tone.EffectAngry
	case Sad:
		return tone.EffectSad
	case Surprised:
		return tone.EffectSurprised
	case Sleepy:
		return tone.EffectSleepy
	case Love:
		return tone.EffectLove
	case Birthday:
		return tone.EffectBirthday
	default:
		return tone.EffectNone
	}
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
