package ballistics

//EngineFactory builds a configured Engine.
type EngineFactory func(config Config) (*Engine, error)

var engineRegistry = map[string]EngineFactory{
	"euler_engine":  func(config Config) (*Engine, error) { return NewEngine("euler", config) },
	"rk4_engine":    func(config Config) (*Engine, error) { return NewEngine("rk4", config) },
	"verlet_engine": func(config Config) (*Engine, error) { return NewEngine("verlet", config) },
}

//LookupEngine resolves a registered engine name and returns the Engine its factory builds from
//config. Unknown names fail with UnknownEngineError.
func LookupEngine(name string, config Config) (*Engine, error) {
	factory, ok := engineRegistry[name]
	if !ok {
		return nil, &UnknownEngineError{Name: name}
	}
	return factory(config)
}

//RegisteredEngines returns every engine name the registry currently knows about, for
//introspection by a CLI front end.
func RegisteredEngines() []string {
	names := make([]string, 0, len(engineRegistry))
	for name := range engineRegistry {
		names = append(names, name)
	}
	return names
}
