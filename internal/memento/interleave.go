package memento

// Interleave reorders scenes outside-in: last scene, first scene,
// second-to-last, second, and so on, converging on the middle of the
// original sequence. Scenes drawn from the first half of the video are
// flagged for grayscale rendering, except the opening scene (kept in
// color as the hook) and the final two output positions, which the
// transition handles itself.
//
// The output is a permutation of the input with the same length.
func Interleave(scenes []Scene) []Scene {
	first := append([]Scene(nil), scenes[:len(scenes)/2]...)
	second := append([]Scene(nil), scenes[len(scenes)/2:]...)

	order := make([]Scene, 0, len(scenes))
	for len(first) > 0 || len(second) > 0 {
		if len(second) > 0 {
			order = append(order, second[len(second)-1])
			second = second[:len(second)-1]
		}
		if len(first) > 0 {
			order = append(order, first[0])
			first = first[1:]
		}
	}

	for i := 0; i < len(order)-2; i++ {
		if i%2 == 1 {
			order[i].Grayscale = true
		}
	}

	return order
}
