// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agent

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/emer/reflex/neuro"
	"github.com/emer/reflex/zones"
	"github.com/goki/mat32"
)

// Config has the parameters of the agent, loaded from a TOML file over
// the defaults
type Config struct {
	Seed           int64   `toml:"seed" def:"0" desc:"seed of the single random source of the network"`
	RoomWidth      float32 `toml:"room_width" def:"640" desc:"width of the room in pixels"`
	RoomHeight     float32 `toml:"room_height" def:"480" desc:"height of the room in pixels"`
	MaxAttnDist    float32 `toml:"max_attention_distance" def:"500" desc:"a neighbor farther than this (manhattan distance, pixels) is not attended"`
	AttnSpan       int     `toml:"attention_span" def:"5" desc:"number of ticks attention stays on a body in the loop strategy"`
	MaxBodies      int     `toml:"max_bodies" def:"5" desc:"packets with more bodies are not attended"`
	FocusHold      int     `toml:"focus_hold" def:"7" desc:"number of environment steps without motion after which attention loops"`
	FocusSwitch    int     `toml:"focus_switch" def:"3" desc:"number of environment steps attention stays on a body in the focus strategy"`
	LoopWarmup     int     `toml:"loop_warmup" def:"30" desc:"attention loops during this many first ticks"`
	ReportInterval int     `toml:"report_interval" def:"100" desc:"number of ticks between timer reports -- 0 for none"`
	StepsPerEnv    int     `toml:"steps_per_env" def:"2" desc:"network ticks per environment step"`
	Lrate          float32 `toml:"lrate" def:"0.05" desc:"learning rate of dopamine-driven weight changes"`
	RecogThr       float32 `toml:"recog_thr" def:"0.7" desc:"default similarity at which encoders recognize a pattern"`
	MaxVelocity    float32 `toml:"max_velocity" def:"5" desc:"body offset per environment step encoded as the top velocity"`
	DistGain       float32 `toml:"dist_gain" def:"5" desc:"gain of the distance change encoding"`
	Proximity      float32 `toml:"proximity" def:"60" desc:"hand to body distance within which a change of shape is a distortion"`
	Script         bool    `toml:"script" desc:"play the predefined motion on the move reflex first"`
	Verbose        bool    `toml:"verbose" desc:"print a trace of every tick"`
	LogFile        string  `toml:"log_file" desc:"if set, the tick log is saved to this CSV file"`
}

func (cf *Config) Defaults() {
	cf.Seed = 0
	cf.RoomWidth = 640
	cf.RoomHeight = 480
	cf.MaxAttnDist = 500
	cf.AttnSpan = 5
	cf.MaxBodies = 5
	cf.FocusHold = 7
	cf.FocusSwitch = 3
	cf.LoopWarmup = 30
	cf.ReportInterval = 100
	cf.StepsPerEnv = 2
	cf.Lrate = 0.05
	cf.RecogThr = 0.7
	cf.MaxVelocity = 5
	cf.DistGain = 5
	cf.Proximity = 60
}

// Room returns the size of the room
func (cf *Config) Room() mat32.Vec2 {
	return mat32.Vec2{X: cf.RoomWidth, Y: cf.RoomHeight}
}

// Visual returns the geometry parameters of the visual zones
func (cf *Config) Visual() zones.VisualParams {
	return zones.VisualParams{Room: cf.Room(), MaxVelocity: cf.MaxVelocity, DistGain: cf.DistGain, Proximity: cf.Proximity}
}

// SetParams sets the network params this config overrides
func (cf *Config) SetParams(pr *neuro.Params) {
	pr.StepsPerEnv = cf.StepsPerEnv
	pr.Lrate = cf.Lrate
	pr.RecogThr = cf.RecogThr
	pr.Update()
}

// LoadConfig returns the defaults overridden by the TOML file at path.
// Keys that match no field are an error.
func LoadConfig(path string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	md, err := toml.DecodeFile(path, cf)
	if err != nil {
		return nil, fmt.Errorf("agent config %v: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("agent config %v: unknown keys: %v", path, strings.Join(keys, ", "))
	}
	return cf, nil
}
