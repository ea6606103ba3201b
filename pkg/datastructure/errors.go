package datastructure

import "errors"

var (
	// ErrMissingVertex edge/query refer ke nama vertex yang tidak ada di graph.
	ErrMissingVertex = errors.New("vertex not found in graph")
	// ErrDuplicateEdgeEndpoints edge dengan kedua endpoint sama (self loop).
	ErrDuplicateEdgeEndpoints = errors.New("edge endpoints must be different vertices")
	ErrEmptyVertexName        = errors.New("vertex name is empty")
	ErrNegativeWeight         = errors.New("edge weight must be a non-negative number")
	// ErrNotPlace operasi yang hanya valid untuk vertex point of interest.
	ErrNotPlace = errors.New("vertex is not a point of interest")

	ErrEmptyQueue    = errors.New("heap is empty")
	ErrDuplicateItem = errors.New("item already in the heap")
	ErrItemNotFound  = errors.New("item not found in the heap")
)
