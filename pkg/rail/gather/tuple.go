package gather

// Tuple2 carries two independently produced values.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 carries three independently produced values.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 carries four independently produced values.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple5 carries five independently produced values.
type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}
