// Package neuro trains feedforward networks with a generational evolutionary algorithm.
//
// A population of agents, each owning a small tanh network, is evaluated by an external
// environment that feeds fixed-length sensor vectors to the networks and assigns a fitness
// once per episode. Evolve then ranks the population, keeps the elites, and fills the rest
// of the next generation with mutated copies of parents drawn by roulette selection over
// the top half of the ranking.
//
// All randomness comes from a *rand.Rand supplied by the caller, so a fixed seed reproduces
// a run exactly.
//
// Basic usage:
//
//	// Load configuration
//	config, err := neuro.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a new session
//	rng := rand.New(rand.NewSource(config.Evolution.Seed))
//	session, err := neuro.NewSession(config, rng)
//	if err != nil {
//		log.Fatalf("Error creating session: %v", err)
//	}
//	session.AddReporter(neuro.NewStdOutReporter(session.RunID))
//
//	// Run for 100 generations with your fitness function
//	for i := 0; i < 100; i++ {
//		winner, err := session.RunGeneration(evalAgents)
//		if err != nil {
//			log.Fatalf("Error running generation: %v", err)
//		}
//
//		if winner != nil {
//			fmt.Println("Solution found!")
//			break
//		}
//	}
package neuro
