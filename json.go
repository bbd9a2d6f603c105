package main

type Canvas struct {
	W int `json:"w"`
	H int `json:"h"`
}

type AppConfig struct {
	Canvas    Canvas `json:"canvas"`
	Snapshot  Canvas `json:"snapshot"`
	WithColor bool   `json:"withColor"`
}

func NewDefaultAppConfig() (*AppConfig, error) {
	return &AppConfig{
		Canvas: Canvas{
			W: 80,
			H: 24,
		},
		Snapshot: Canvas{
			W: 800,
			H: 600,
		},
		WithColor: false,
	}, nil
}
