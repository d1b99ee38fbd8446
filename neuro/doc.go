// Package neuro provides the parameter model and genetic operators for evolving
// small dense feedforward neural networks.
//
// A network's parameters live in a NetworkParams snapshot: an ordered list of
// dense layers, each with a row-major weight matrix, a bias vector and an
// activation tag. Snapshots are plain data. The nn subpackage turns them into
// live networks that can be evaluated, and exports live networks back into
// snapshots. The genetic operators (Clone, Crossover, Mutate) work on snapshots
// only and never touch a live network.
//
// Basic usage:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//
//	net := nn.NewNetwork(2, 1, 1, 4)
//	if err := net.Initialize(rng); err != nil {
//		log.Fatalf("Error initializing network: %v", err)
//	}
//
//	parent, err := net.ToData()
//	if err != nil {
//		log.Fatalf("Error exporting network: %v", err)
//	}
//
//	// Breed a child from two parents and perturb it.
//	child, err := neuro.Crossover(parent, other, neuro.DefaultMixProb, rng)
//	if err != nil {
//		log.Fatalf("Error during crossover: %v", err)
//	}
//	neuro.Mutate(child, 0.1, 0.5, rng)
//
//	// A live network must be rebuilt to pick up new parameters.
//	if err := net.Build(child); err != nil {
//		log.Fatalf("Error building network: %v", err)
//	}
//
// None of the types in this package are safe for concurrent mutation, and a
// *rand.Rand must not be shared between goroutines. Give each worker its own
// snapshots and its own generator.
package neuro
