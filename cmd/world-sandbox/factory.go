package main

import (
	"github.com/plus3/gameworld/ecs"
)

var (
	wallLayer   = ecs.RenderLayer{Name: "WALLS", Index: 1}
	pickupLayer = ecs.RenderLayer{Name: "PICKUPS", Index: 2}
	playerLayer = ecs.RenderLayer{Name: "PLAYER", Index: 3}
)

// sandboxSpawns lists what a level file can place.
var sandboxSpawns = ecs.SpawnMap{
	"player": func(data *ecs.SpawnData) (*ecs.Entity, error) {
		speed, ok := data.Float64("speed")
		if !ok {
			speed = 240
		}
		return ecs.NewBuilder(data).
			BBox(ecs.Box(24, 24)).
			Layer(playerLayer).
			WithID("player", 1).
			With(&Mover{Speed: speed}).
			Build()
	},
	"coin, gem": func(data *ecs.SpawnData) (*ecs.Entity, error) {
		value, ok := data.Int("value")
		if !ok {
			value = 1
		}
		spin := 90.0
		if t, _ := data.Str("type"); t == "gem" {
			spin = 180
		}
		return ecs.NewBuilder(data).
			BBox(ecs.Circle(6)).
			Layer(pickupLayer).
			With(&Pickup{Value: value}, &Spin{DegreesPerSecond: spin}).
			Build()
	},
	"crate": func(data *ecs.SpawnData) (*ecs.Entity, error) {
		return ecs.NewBuilder(data).
			BBox(ecs.Box(32, 32)).
			Layer(wallLayer).
			ZIndex(1).
			Build()
	},
	"wall": func(data *ecs.SpawnData) (*ecs.Entity, error) {
		w, _ := data.Float64("width")
		h, _ := data.Float64("height")
		return ecs.NewBuilder(data).
			BBox(ecs.Box(w, h)).
			Layer(wallLayer).
			Build()
	},
}
