package assets

// Title is shown on the terminal title bar and in the SSH banner.
const Title = "Tombs of the Ancient Kings"

// Welcome is the first line of every run's message log.
const Welcome = "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings!"

// Epitaphs close the run summary on the end screen; one is picked at random.
var Epitaphs = []string{
	"The kings keep their tombs. They have always kept their tombs.",
	"Another name the dust will not remember.",
	"Somewhere below, a troll is telling this story badly.",
	"The torch gutters out. The dark was patient.",
}
