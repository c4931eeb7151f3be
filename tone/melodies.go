package tone

// Effect names a sound effect the face engine can request.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectHappy
	EffectLaughing
	EffectSad
	EffectAngry
	EffectSurprised
	EffectSleepy
	EffectSleeping
	EffectCrazy
	EffectLove
	EffectWink
	EffectSmug
	EffectScared
	EffectBlink
	EffectStartup
	EffectBirthday
)

// PlayEffect starts the melody for an effect. Unknown effects stop
// playback.
func (p *Player) PlayEffect(e Effect) {
	switch e {
	case EffectHappy:
		p.Play(melodyHappy)
	case EffectLaughing:
		p.Play(melodyLaughing)
	case EffectSad:
		p.Play(melodySad)
	case EffectAngry:
		p.Play(melodyAngry)
	case EffectSurprised:
		p.Play(melodySurprised)
	case EffectSleepy:
		p.Play(melodySleepy)
	case EffectSleeping:
		p.Play(melodySleeping)
	case EffectCrazy:
		p.Play(melodyCrazy)
	case EffectLove:
		p.Play(melodyLove)
	case EffectWink:
		p.Play(melodyWink)
	case EffectSmug:
		p.Play(melodySmug)
	case EffectScared:
		p.Play(melodyScared)
	case EffectBlink:
		p.Play(melodyBlink)
	case EffectStartup:
		p.Play(melodyStartup)
	case EffectBirthday:
		p.Play(Birthday())
	default:
		p.Stop()
	}
}

// Cheerful ascending arpeggio with bounce.
var melodyHappy = Melody{Steps: []Step{
	{C5, 80, true},
	{E5, 80, true},
	{G5, 80, true},
	{C6, 120, true},
	{G5, 60, true},
	{C6, 150, false},
	{Rest, 50, false},
}}

// Bouncy staccato giggles.
var melodyLaughing = Melody{Steps: []Step{
	{E5, 50, false},
	{G5, 50, true},
	{E5, 50, false},
	{G5, 50, true},
	{A5, 50, false},
	{G5, 50, true},
	{E5, 50, false},
	{C5, 100, true},
}}

// Slow descent.
var melodySad = Melody{Steps: []Step{
	{E5, 200, true},
	{D5, 200, true},
	{C5, 200, true},
	{B4, 300, true},
	{Rest, 100, false},
}}

// Low aggressive growl.
var melodyAngry = Melody{Steps: []Step{
	{E4, 100, false},
	{DS4, 100, true},
	{E4, 100, false},
	{DS4, 150, true},
	{C4, 200, true},
}}

// Quick upward sweep.
var melodySurprised = Melody{Steps: []Step{
	{C4, 30, true},
	{G4, 30, true},
	{C5, 30, true},
	{G5, 30, true},
	{C6, 150, true},
	{Rest, 50, false},
}}

// Gentle descending lullaby.
var melodySleepy = Melody{Steps: []Step{
	{G5, 150, true},
	{E5, 150, true},
	{C5, 200, true},
	{Rest, 100, false},
}}

// Soft rhythmic snore.
var melodySleeping = Melody{Steps: []Step{
	{C4, 300, true},
	{G4, 200, true},
	{Rest, 400, false},
}}

// Wild jumps.
var melodyCrazy = Melody{Steps: []Step{
	{C5, 40, true},
	{G5, 40, true},
	{D5, 40, true},
	{A5, 40, true},
	{E5, 40, true},
	{B5, 40, true},
	{F5, 40, true},
	{C6, 100, true},
}}

// Heartbeat-like with a sweet tail.
var melodyLove = Melody{Steps: []Step{
	{C5, 100, true},
	{E5, 100, true},
	{G5, 150, true},
	{E5, 100, true},
	{C5, 100, true},
	{E5, 200, true},
}}

// Playful short boop.
var melodyWink = Melody{Steps: []Step{
	{E5, 60, true},
	{G5, 100, true},
	{Rest, 30, false},
}}

// Sassy sliding notes.
var melodySmug = Melody{Steps: []Step{
	{G5, 100, true},
	{FS5, 100, true},
	{G5, 150, true},
	{Rest, 50, false},
}}

// Trembling warble.
var melodyScared = Melody{Steps: []Step{
	{E5, 50, true},
	{F5, 50, true},
	{E5, 50, true},
	{F5, 50, true},
	{E5, 50, true},
	{D5, 100, true},
	{Rest, 50, false},
}}

// Tiny blip.
var melodyBlink = Melody{Steps: []Step{
	{C6, 30, false},
	{Rest, 20, false},
}}

// Boot jingle.
var melodyStartup = Melody{Steps: []Step{
	{C5, 100, true},
	{E5, 100, true},
	{G5, 100, true},
	{C6, 200, true},
	{Rest, 100, false},
}}
