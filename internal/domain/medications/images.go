package medications

import "math/rand/v2"

// Placeholders decorativos servidos desde /static; el caller nunca
// manda img_url, se elige uno al azar en el alta.
var placeholderImages = []string{
	"/static/img/pill-blue.png",
	"/static/img/pill-orange.png",
	"/static/img/pill-white.png",
	"/static/img/bottle-amber.png",
}

func randomImageURL() string {
	return placeholderImages[rand.IntN(len(placeholderImages))]
}
