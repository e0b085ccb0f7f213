package assets

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go bigpicture/internal/assets Provider

// Provider supplies the randomized content games are built from.
//
// The game core treats the vocabulary as opaque: it only requires that
// starting objects are distinct and that four options are offered per turn.
type Provider interface {
	// GenerateGameAssets returns the communal goal text and one distinct
	// starting object description per player.
	GenerateGameAssets(playerCount int) (goal string, objects []string)

	// GenerateModificationOptions returns four distinct modifier strings
	GenerateModificationOptions() []string

	// ApplyModification combines an object description with a modifier
	ApplyModification(object, modifier string) string
}
