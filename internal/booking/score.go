package booking

import "math"

// Composite score weights. They must sum to 1 so scores stay in [0,1].
const (
	weightRating       = 0.40
	weightPrice        = 0.35
	weightCancellation = 0.15
	weightAvailability = 0.10
)

// Score attaches a composite desirability score to every offer in the batch.
// The price component is normalized against the batch's own min/max nightly
// price, so the whole batch must be assembled before scoring; a single-offer
// batch (or a batch with no price spread) gets a full price score.
func Score(offers []Offer) {
	if len(offers) == 0 {
		return
	}

	minPrice, maxPrice := offers[0].NightlyPrice, offers[0].NightlyPrice
	for _, o := range offers[1:] {
		if o.NightlyPrice < minPrice {
			minPrice = o.NightlyPrice
		}
		if o.NightlyPrice > maxPrice {
			maxPrice = o.NightlyPrice
		}
	}

	for i := range offers {
		o := &offers[i]

		priceScore := 1.0
		if maxPrice > minPrice {
			priceScore = 1 - float64(o.NightlyPrice-minPrice)/float64(maxPrice-minPrice)
		}

		s := weightRating*(o.Rating/5) +
			weightPrice*priceScore +
			weightCancellation*cancellationScore(o.Cancellation) +
			weightAvailability*availabilityScore(o.Availability)

		o.Score = math.Round(s*100) / 100
	}
}

func cancellationScore(c Cancellation) float64 {
	switch c {
	case CancellationFlexible:
		return 1.0
	case CancellationModerate:
		return 0.7
	default:
		return 0.4
	}
}

func availabilityScore(a Availability) float64 {
	switch a {
	case AvailabilityAvailable:
		return 1.0
	case AvailabilityLimited:
		return 0.6
	default:
		return 0.2
	}
}
