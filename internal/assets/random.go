package assets

import (
	"fmt"
	"math/rand"
	"time"
)

var animals = []string{
	"A disco-dancing penguin",
	"A space-traveling hamster",
	"A surfing giraffe",
	"A monocle-wearing octopus",
	"A skateboarding bulldog",
	"A wizard cat",
	"A weightlifting bunny",
	"A scuba-diving elephant",
	"A jetpack-wearing sloth",
	"A breakdancing turtle",
	"A karate-chopping kangaroo",
	"A DJ-ing dolphin",
	"A detective owl",
	"A chef raccoon",
	"A ballerina hippo",
}

var objects = []string{
	"A giant floating taco",
	"A sentient toaster",
	"A rocket-powered unicycle",
	"A crystal ball with a smiley face",
	"A rubber ducky with a crown",
	"A marshmallow castle",
	"A flying pizza slice",
	"A neon-glowing boombox",
	"A teapot that breathes bubbles",
	"A pair of sneakers with wings",
	"A golden banana trophy",
	"A hoverboard made of cookies",
	"A magic wand that shoots confetti",
	"A backpack full of rainbows",
	"A telescope that sees into the future",
}

var locations = []string{
	"in outer space",
	"on a tropical beach",
	"inside a giant candy bowl",
	"on top of a snowy mountain",
	"under the ocean",
	"in a futuristic neon city",
	"in a magical forest",
	"on a floating island",
	"at a robot disco",
	"inside a giant bubble",
	"at a dinosaur tea party",
	"on a cloud made of cotton candy",
	"inside a giant clock",
	"at a carnival for aliens",
	"in a library of floating books",
}

var modifiers = []string{
	"wearing a top hat",
	"holding a lightsaber",
	"wearing sunglasses",
	"riding a skateboard",
	"eating a pizza",
	"on fire (safely)",
	"covered in glitter",
	"wearing a cape",
	"holding a balloon",
	"wearing clown shoes",
	"surrounded by butterflies",
	"holding a sign that says 'Help'",
	"wearing a tutu",
	"holding a rubber chicken",
	"wearing a space helmet",
	"that is giant",
	"that is tiny",
	"that is glowing green",
	"that is invisible (mostly)",
	"made of jelly",
}

// Random is a Provider backed by a seeded math/rand source
type Random struct {
	random *rand.Rand
}

// Config for the random provider
type Config struct {
	// Seed pins the random source for tests; nil seeds from the wall clock
	Seed *int64
}

// NewRandom creates a new random asset provider
func NewRandom(cfg *Config) *Random {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// GenerateGameAssets returns a composite communal goal and one distinct
// starting object per player, drawn without replacement.
func (r *Random) GenerateGameAssets(playerCount int) (string, []string) {
	animal := animals[r.random.Intn(len(animals))]
	object := objects[r.random.Intn(len(objects))]
	location := locations[r.random.Intn(len(locations))]

	goal := fmt.Sprintf("%s holding %s %s", animal, object, location)

	pool := make([]string, 0, len(animals)+len(objects))
	pool = append(pool, animals...)
	pool = append(pool, objects...)
	r.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if playerCount > len(pool) {
		playerCount = len(pool)
	}
	starting := make([]string, playerCount)
	copy(starting, pool[:playerCount])

	return goal, starting
}

// GenerateModificationOptions returns four distinct modifiers
func (r *Random) GenerateModificationOptions() []string {
	pool := make([]string, len(modifiers))
	copy(pool, modifiers)
	r.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:4]
}

// ApplyModification appends a modifier to an object description
func (r *Random) ApplyModification(object, modifier string) string {
	return fmt.Sprintf("%s %s", object, modifier)
}
