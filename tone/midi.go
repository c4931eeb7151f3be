package tone

// midiFreqs holds the frequency in Hz for MIDI notes 21 (A0) through 108
// (C8).
var midiFreqs = [...]uint16{
	28, 29, 31, 33, 35, 37, 39, 41, 44, 46, 49, 52, // A0-G#1
	55, 58, 62, 65, 69, 73, 78, 82, 87, 92, 98, 104, // A1-G#2
	110, 117, 123, 131, 139, 147, 156, 165, 175, 185, 196, 208, // A2-G#3
	220, 233, 247, 262, 277, 294, 311, 330, 349, 370, 392, 415, // A3-G#4
	440, 466, 494, 523, 554, 587, 622, 659, 698, 740, 784, 831, // A4-G#5
	880, 932, 988, 1047, 1109, 1175, 1245, 1319, 1397, 1480, 1568, 1661, // A5-G#6
	1760, 1865, 1976, 2093, 2217, 2349, 2489, 2637, 2794, 2960, 3136, 3322, // A6-G#7
	3520, 3729, 3951, 4186, // A7-C8
}

// NoteFreq converts a MIDI note number to Hz. Note 0 is a rest; values
// outside the table clamp to its ends.
func NoteFreq(note uint8) uint16 {
	if note == 0 {
		return 0
	}
	if note < 21 {
		return midiFreqs[0]
	}
	if note > 108 {
		return midiFreqs[len(midiFreqs)-1]
	}
	return midiFreqs[note-21]
}

type midiEvent struct {
	note uint8
	ms   uint16
}

// birthdayEvents is "Happy Birthday to You" in G major, 3/4 time, quarter
// note around 300 ms. Note 0 entries are breaths.
var birthdayEvents = [...]midiEvent{
	// "Happy Birthday to you"
	{67, 200}, {67, 200}, {69, 350}, {67, 350}, {72, 350}, {71, 700},
	{0, 150},
	// "Happy Birthday to you"
	{67, 200}, {67, 200}, {69, 350}, {67, 350}, {74, 350}, {72, 700},
	{0, 150},
	// "Happy Birthday dear [name]"
	{67, 200}, {67, 200}, {79, 350}, {76, 350}, {72, 350}, {71, 350}, {69, 700},
	{0, 150},
	// "Happy Birthday to you!"
	{77, 200}, {77, 200}, {76, 350}, {72, 350}, {74, 350}, {72, 900},
}

// Birthday builds the birthday song as a melody. Notes change cleanly, with
// no portamento.
func Birthday() Melody {
	steps := make([]Step, len(birthdayEvents))
	for i, ev := range birthdayEvents {
		steps[i] = Step{Freq: NoteFreq(ev.note), Ms: ev.ms}
	}
	return Melody{Steps: steps}
}
