package orthopack

// nextPoint scans the strategy in order and returns the head of the first
// non-empty category queue, along with the category it came from. The
// second return value is false when every queue is empty.
func nextPoint(queues *pointQueues, strategy Strategy) (Point, Category, bool) {
	for _, cat := range strategy {
		if !queues.empty(cat) {
			return queues.pop(cat), cat, true
		}
	}
	return Point{}, 0, false
}
