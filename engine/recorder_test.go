package engine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

// playRandom drives a session with a random mix of inputs, restarting
// whenever the game ends.
func playRandom(session *engine.Session, r *rand.Rand, steps int) {
	inputs := []engine.Command{engine.Left, engine.Right, engine.Rotate, engine.Tick, engine.Tick, engine.FastOn, engine.FastOff}

	session.Apply(engine.Toggle)
	for range steps {
		if session.Board().Status() == board.GameOver {
			session.Apply(engine.Toggle)
		}
		session.Apply(inputs[r.IntN(len(inputs))])
	}
}

func TestReplay(t *testing.T) {
	t.Run("replayed log reproduces the game", func(t *testing.T) {
		session := engine.NewSession(engine.WithSeed(99))
		playRandom(session, rand.New(rand.NewPCG(1, 1)), 5000)

		rec := session.Recording()
		require.Equal(t, uint64(99), rec.Seed)
		require.NotEmpty(t, rec.Commands)

		replayed := engine.Replay(rec)
		assert.True(t, engine.Equivalent(session, replayed))
		assert.Equal(t, session.Board().Grid(), replayed.Board().Grid())
		assert.Equal(t, session.Board().Score(), replayed.Board().Score())
		assert.Equal(t, session.SpawnCounts(), replayed.SpawnCounts())
		assert.NotEqual(t, session.ID, replayed.ID)
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := engine.NewSession(engine.WithSeed(1))
		b := engine.NewSession(engine.WithSeed(2))
		a.Apply(engine.Toggle)
		b.Apply(engine.Toggle)
		for range 200 {
			a.Apply(engine.Tick)
			b.Apply(engine.Tick)
		}
		assert.NotEqual(t, a.SpawnCounts(), b.SpawnCounts())
	})

	t.Run("recording is a copy", func(t *testing.T) {
		session := engine.NewSession()
		session.Apply(engine.Toggle)

		rec := session.Recording()
		rec.Commands[0] = engine.Left
		assert.Equal(t, []engine.Command{engine.Toggle}, session.Recording().Commands)
	})
}

func TestRecorder(t *testing.T) {
	r := engine.NewRecorder()
	assert.Empty(t, r.Last(5))

	r.Record(engine.Left)
	r.Record(engine.Rotate)
	r.Record(engine.Tick)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []engine.Command{engine.Rotate, engine.Tick}, r.Last(2))
	assert.Equal(t, []engine.Command{engine.Left, engine.Rotate, engine.Tick}, r.Last(10))
}
