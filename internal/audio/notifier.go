package audio

// Notifier turns shot outcomes into sounds
type Notifier struct {
	sounds *SoundManager
	Volume float64
}

func NewNotifier(sounds *SoundManager, volume float64) *Notifier {
	return &Notifier{sounds: sounds, Volume: volume}
}

func (n *Notifier) Scored(score int) {
	n.sounds.Play(ScoreTone(n.sounds.SampleRate(), score, n.Volume))
}

func (n *Notifier) Failed() {
	n.sounds.Play(FailTone(n.sounds.SampleRate(), n.Volume))
}

func (n *Notifier) Missed() {
	n.sounds.Play(MissTone(n.sounds.SampleRate(), n.Volume))
}
