// Package classifier recommends a match topology label for a load using a
// pre-trained decision-tree ensemble. The model is loaded once at startup and
// is read-only afterwards, so a single instance may serve concurrent requests.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Classifier maps a feature vector to a label.
type Classifier interface {
	Predict(features []float64) (string, error)
}

var (
	ErrInvalidModel    = errors.New("invalid classifier model")
	ErrInvalidFeatures = errors.New("invalid feature vector")
)

// Node is one node of a decision tree. A node with Left < 0 is a leaf that
// votes for Class; otherwise samples with x[Feature] <= Threshold go Left.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
}

// Tree is a flattened decision tree rooted at Nodes[0].
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a majority-vote ensemble of decision trees.
type Forest struct {
	Features []string `json:"features"`
	Classes  []string `json:"classes"`
	Trees    []Tree   `json:"trees"`
}

// Decode parses and validates a JSON forest artifact.
func Decode(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if len(f.Features) == 0 {
		return fmt.Errorf("%w: no features declared", ErrInvalidModel)
	}
	if len(f.Classes) == 0 {
		return fmt.Errorf("%w: no classes declared", ErrInvalidModel)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidModel)
	}

	for ti, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d is empty", ErrInvalidModel, ti)
		}
		for ni, n := range tree.Nodes {
			if n.Left < 0 {
				if n.Class < 0 || n.Class >= len(f.Classes) {
					return fmt.Errorf("%w: tree %d node %d: class %d out of range", ErrInvalidModel, ti, ni, n.Class)
				}
				continue
			}
			if n.Feature < 0 || n.Feature >= len(f.Features) {
				return fmt.Errorf("%w: tree %d node %d: feature %d out of range", ErrInvalidModel, ti, ni, n.Feature)
			}
			// children after their parent keeps every walk finite
			for _, child := range []int{n.Left, n.Right} {
				if child <= ni || child >= len(tree.Nodes) {
					return fmt.Errorf("%w: tree %d node %d: child %d out of order", ErrInvalidModel, ti, ni, child)
				}
			}
		}
	}
	return nil
}

// Predict returns the label most trees vote for. Ties go to the class listed first.
func (f *Forest) Predict(features []float64) (string, error) {
	if len(features) != len(f.Features) {
		return "", fmt.Errorf("%w: want %d features, got %d", ErrInvalidFeatures, len(f.Features), len(features))
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: %s is not finite", ErrInvalidFeatures, f.Features[i])
		}
	}

	votes := make([]int, len(f.Classes))
	for _, tree := range f.Trees {
		votes[tree.classify(features)]++
	}

	best := 0
	for c := 1; c < len(votes); c++ {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return f.Classes[best], nil
}

func (t Tree) classify(x []float64) int {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Class
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
