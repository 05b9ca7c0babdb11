// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/timer"
	"github.com/emer/empi/v2/mpi"
	"github.com/emer/reflex/sdr"
	"github.com/goki/ki/indent"
	"github.com/goki/kigen/ordmap"
)

// neuro.Network holds the areas, zones and wires of the substrate, the
// pattern and connection stores, and schedules the updates of each tick.
type Network struct {
	Nm       string                          `desc:"overall name of network"`
	Params   Params                          `view:"inline" desc:"hyper-parameters shared by all areas"`
	Time     Time                            `desc:"tick counters"`
	Store    *sdr.Store                      `view:"-" desc:"arena of all patterns"`
	Conns    ConnStore                       `view:"-" desc:"all learned pattern connections"`
	Areas    []Area                          `desc:"areas in registration order, which is also their update order"`
	AreaMap  *ordmap.Map[string, sdr.AreaID] `view:"-" desc:"area name -> id, in registration order"`
	Zones    []Zone                          `desc:"zones in registration order"`
	Wires    []*Connection                   `desc:"inter-area connections, propagated in creation order"`
	Flow     map[int][]Portion               `view:"-" desc:"dopamine portions released, by tick"`
	Sink     EventSink                       `view:"-" desc:"receives all events sent by areas"`
	Rand     *rand.Rand                      `view:"-" desc:"the single random source of the network"`
	Verbose  bool                            `desc:"print a trace of patterns created and recognized, and of every tick"`
	Built    bool                            `inactive:"+" desc:"Build has been called"`
	FunTimes map[string]*timer.Time          `view:"-" desc:"timers for each major function (step phase)"`
}

// NewNetwork returns a new network with default params and random seed
func NewNetwork(name string, seed int64) *Network {
	nt := &Network{}
	nt.InitName(name, seed)
	return nt
}

// InitName initializes the network for given name and random seed
func (nt *Network) InitName(name string, seed int64) {
	nt.Nm = name
	nt.Params.Defaults()
	nt.Time.Reset()
	nt.Store = sdr.NewStore()
	nt.Conns.Init(nt.Params.MinWt, nt.Params.MaxWt)
	nt.AreaMap = ordmap.New[string, sdr.AreaID]()
	nt.Flow = make(map[int][]Portion)
	nt.Rand = rand.New(rand.NewSource(seed))
	nt.FunTimes = make(map[string]*timer.Time)
}

func (nt *Network) Name() string  { return nt.Nm }
func (nt *Network) Label() string { return nt.Nm }
func (nt *Network) NAreas() int   { return len(nt.Areas) }
func (nt *Network) Tick() int     { return nt.Time.Tick }

// AddZone registers a zone, which must embed ZoneStru, and returns it.
// Zones must be added before their areas.
func (nt *Network) AddZone(zn Zone, name string) Zone {
	zs := zn.AsZone()
	zs.Nm = name
	zs.Idx = len(nt.Zones)
	zs.Net = nt
	nt.Zones = append(nt.Zones, zn)
	return zn
}

// ZoneByName returns a zone by name, nil if not found
func (nt *Network) ZoneByName(name string) Zone {
	for _, zn := range nt.Zones {
		if zn.Name() == name {
			return zn
		}
	}
	return nil
}

// AddArea registers an area in given zone.  Areas update in the order
// they are added.  Names must be unique.
func (nt *Network) AddArea(zn Zone, ar Area) error {
	as := ar.AsArea()
	if _, has := nt.AreaMap.ValByKey(as.Nm); has {
		err := fmt.Errorf("Area named: %v in Network: %v: %w", as.Nm, nt.Nm, ErrDuplicateArea)
		log.Println(err)
		return err
	}
	as.ID = sdr.AreaID(len(nt.Areas))
	as.Net = nt
	zs := zn.AsZone()
	as.ZoneIdx = zs.Idx
	zs.Areas = append(zs.Areas, as.ID)
	nt.Areas = append(nt.Areas, ar)
	nt.AreaMap.Add(as.Nm, as.ID)
	return nil
}

// AreaByName returns an area by name -- emits a log error message and
// returns ErrAreaNotFound if it is not found
func (nt *Network) AreaByName(name string) (Area, error) {
	id, has := nt.AreaMap.ValByKey(name)
	if !has {
		err := fmt.Errorf("Area named: %v not found in Network: %v: %w", name, nt.Nm, ErrAreaNotFound)
		log.Println(err)
		return nil, err
	}
	return nt.Areas[id], nil
}

// AreaByID returns the area for given handle, nil if invalid
func (nt *Network) AreaByID(id sdr.AreaID) Area {
	if id < 0 || int(id) >= len(nt.Areas) {
		return nil
	}
	return nt.Areas[id]
}

// AreaName returns the name of the area with given handle, "" if none
func (nt *Network) AreaName(id sdr.AreaID) string {
	ar := nt.AreaByID(id)
	if ar == nil {
		return ""
	}
	return ar.Name()
}

// Connect adds a wire from the output of src (or its PropOutput of name
// prop, if not empty) to a new input slot of tgt, sized to the output
// space of src.
func (nt *Network) Connect(src, tgt Area, prop string) (*Connection, error) {
	ss := src.AsArea()
	ts := tgt.AsArea()
	for _, cn := range nt.Wires {
		if cn.Source == ss.ID && cn.Target == ts.ID && cn.Prop == prop {
			return nil, fmt.Errorf("Connection from: %v to: %v: %w", ss.Nm, ts.Nm, ErrDuplicateConnection)
		}
	}
	if prop != "" {
		if _, ok := src.(PropOutput); !ok {
			return nil, fmt.Errorf("Connection from: %v: area has no property outputs", ss.Nm)
		}
	}
	cn := &Connection{Source: ss.ID, Target: ts.ID, Open: true, Prop: prop}
	cn.Slot = ts.AddSlot(ss.OutSpace)
	nt.Wires = append(nt.Wires, cn)
	return cn, nil
}

// Build builds all areas that need it, in registration order, after
// all areas and wires were added.  Errors of all areas are collected
// into one.
func (nt *Network) Build() error {
	nt.Params.Update()
	nt.Conns.Init(nt.Params.MinWt, nt.Params.MaxWt)
	var errs []error
	for _, ar := range nt.Areas {
		if bl, ok := ar.(Builder); ok {
			if err := bl.Build(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	// slot sizes are only known once sources are built
	for _, cn := range nt.Wires {
		ts := nt.Areas[cn.Target].AsArea()
		ts.InSizes[cn.Slot] = nt.Areas[cn.Source].AsArea().OutSpace
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		log.Println(err)
		return err
	}
	nt.Built = true
	return nil
}

// Step runs one tick: zones begin, areas update in registration order,
// wires propagate, the dopamine released on this tick spreads to all
// zones, and zones end.  The first area error stops the tick.
func (nt *Network) Step() error {
	nt.Time.TickInc()
	tick := nt.Time.Tick

	nt.FunTimerStart("StepBegin")
	for _, zn := range nt.Zones {
		zn.OnStepBegin()
	}
	nt.FunTimerStop("StepBegin")

	nt.FunTimerStart("Update")
	for _, ar := range nt.Areas {
		if err := ar.Update(); err != nil {
			nt.FunTimerStop("Update")
			return fmt.Errorf("Network: %v tick: %d area: %v: %w", nt.Nm, tick, ar.Name(), err)
		}
		nt.Zones[ar.AsArea().ZoneIdx].OnAreaUpdated(ar)
	}
	nt.FunTimerStop("Update")

	nt.FunTimerStart("Propagate")
	for _, cn := range nt.Wires {
		cn.Propagate(nt)
	}
	nt.FunTimerStop("Propagate")

	nt.FunTimerStart("Dopamine")
	if portions := nt.Flow[tick]; len(portions) > 0 {
		for _, zn := range nt.Zones {
			zn.SpreadDope(portions)
		}
	}
	delete(nt.Flow, tick)
	nt.FunTimerStop("Dopamine")

	nt.FunTimerStart("StepEnd")
	for _, zn := range nt.Zones {
		zn.OnStepEnd()
	}
	nt.FunTimerStop("StepEnd")

	if nt.Verbose {
		nt.Report()
	}
	return nil
}

// Run runs Step until the tick counter reaches maxIter
func (nt *Network) Run(maxIter int) error {
	for nt.Time.Tick < maxIter {
		if err := nt.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the inputs of all areas
func (nt *Network) Reset() {
	for _, ar := range nt.Areas {
		ar.AsArea().ResetInputs()
	}
}

// ResetPerception clears the outputs of all receptive areas, so that the
// next body activates them from scratch.
func (nt *Network) ResetPerception() {
	for _, ar := range nt.Areas {
		as := ar.AsArea()
		if as.IsReceptive() {
			as.ResetOutput()
		}
	}
}

// Emit sends an event to the Sink.  The surprise of a PatternCreated event
// is also queued as a dopamine portion, spread at the end of this tick.
func (nt *Network) Emit(ev Event) {
	if pc, ok := ev.(PatternCreated); ok && pc.Surprise > 0 {
		nt.QueueDope(nt.Time.Tick, Portion{Value: pc.Surprise, Source: pc.Area})
	}
	if nt.Sink != nil {
		nt.Sink.OnEvent(ev)
	}
}

// QueueDope queues a dopamine portion to be spread on given tick
func (nt *Network) QueueDope(tick int, p Portion) {
	nt.Flow[tick] = append(nt.Flow[tick], p)
}

// PendingDope returns the total dopamine queued for the current tick
func (nt *Network) PendingDope() int {
	sum := 0
	for _, p := range nt.Flow[nt.Time.Tick] {
		sum += p.Value
	}
	return sum
}

// PatternAccepts returns true if the pattern accepts dopamine of given
// portion, i.e., it originates from the area that released it.
func (nt *Network) PatternAccepts(pt *sdr.Pattern, p Portion) bool {
	return nt.Store.OriginatesFrom(pt, p.Source)
}

// Report prints the current tick and the output of every area
func (nt *Network) Report() {
	mpi.Printf("Tick: %d\n", nt.Time.Tick)
	for _, ar := range nt.Areas {
		as := ar.AsArea()
		if as.Output != nil {
			mpi.Printf("\t%v: %v\n", as.Nm, as.Output)
		}
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Reports

// SizeReport returns a string reporting the size of the network: areas,
// wires, learned connections and the pattern store.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nslots := 0
	for _, ar := range nt.Areas {
		nslots += len(ar.AsArea().InSizes)
	}
	cmem := len(nt.Conns.Conns) * int(unsafe.Sizeof(PatternsConnection{})+8)
	fmt.Fprintf(&b, "Network: %v\t Areas: %d\t Zones: %d\t Wires: %d\t Slots: %d\n", nt.Nm, len(nt.Areas), len(nt.Zones), len(nt.Wires), nslots)
	for _, zn := range nt.Zones {
		zs := zn.AsZone()
		fmt.Fprintf(&b, "\tZone: %v\t Areas: %d\n", zs.Nm, len(zs.Areas))
	}
	fmt.Fprintf(&b, "Pattern Connections: %d\t Mem: %v\n", len(nt.Conns.Conns), (datasize.ByteSize)(cmem).HumanReadable())
	b.WriteString(nt.Store.SizeReport())
	return b.String()
}

// TimerReport reports the amount of time spent in each step phase
func (nt *Network) TimerReport() {
	fmt.Printf("TimerReport: %v, Ticks: %v\n", nt.Nm, nt.Time.Tick)
	fmt.Printf("\t%13s \t%7s\t%7s\n", "Function Name", "Secs", "Pct")
	fnms := make([]string, 0, len(nt.FunTimes))
	for k := range nt.FunTimes {
		fnms = append(fnms, k)
	}
	sort.StringSlice(fnms).Sort()
	pcts := make([]float64, len(fnms))
	tot := 0.0
	for i, fn := range fnms {
		pcts[i] = nt.FunTimes[fn].TotalSecs()
		tot += pcts[i]
	}
	for i, fn := range fnms {
		pct := 0.0
		if tot > 0 {
			pct = 100 * (pcts[i] / tot)
		}
		fmt.Printf("\t%13s \t%7.3f\t%7.1f\n", fn, pcts[i], pct)
	}
	fmt.Printf("\t%13s \t%7.3f\n", "Total", tot)
}

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (nt *Network) FunTimerStart(fun string) {
	ft, ok := nt.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		nt.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (nt *Network) FunTimerStop(fun string) {
	ft := nt.FunTimes[fun]
	ft.Stop()
}

// TimerReset resets all function timers
func (nt *Network) TimerReset() {
	for _, ft := range nt.FunTimes {
		ft.Reset()
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Connections File

// SaveConnsJSON saves the learned pattern connections to a JSON-formatted
// file.  If filename has .gz extension, then file is gzip compressed.
func (nt *Network) SaveConnsJSON(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzr := gzip.NewWriter(fp)
		err = nt.WriteConnsJSON(gzr)
		gzr.Close()
	} else {
		bw := bufio.NewWriter(fp)
		err = nt.WriteConnsJSON(bw)
		bw.Flush()
	}
	return err
}

// WriteConnsJSON writes the learned pattern connections grouped by owning
// area, in a JSON text format.
func (nt *Network) WriteConnsJSON(w io.Writer) error {
	depth := 0
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Network\": %q,\n", nt.Nm)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Tick\": %d,\n", nt.Time.Tick)))
	w.Write(indent.TabBytes(depth))
	var owners []Area
	for _, ar := range nt.Areas {
		if len(nt.Conns.ByArea(ar.AsArea().ID)) > 0 {
			owners = append(owners, ar)
		}
	}
	if len(owners) == 0 {
		w.Write([]byte("\"Areas\": null\n"))
	} else {
		w.Write([]byte("\"Areas\": [\n"))
		depth++
		for ai, ar := range owners {
			nt.writeAreaConnsJSON(w, depth, ar)
			if ai == len(owners)-1 {
				w.Write([]byte("\n"))
			} else {
				w.Write([]byte(",\n"))
			}
		}
		depth--
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("]\n"))
	}
	depth--
	w.Write(indent.TabBytes(depth))
	_, err := w.Write([]byte("}\n"))
	return err
}

func (nt *Network) writeAreaConnsJSON(w io.Writer, depth int, ar Area) {
	as := ar.AsArea()
	pcs := nt.Conns.ByArea(as.ID)
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Area\": %q,\n", as.Nm)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"Conns\": [\n"))
	depth++
	for ci, pc := range pcs {
		w.Write(indent.TabBytes(depth))
		w.Write([]byte(fmt.Sprintf("{\"Source\": %d, \"Target\": %d, \"Wt\": %g, \"Tick\": %d, \"Dope\": %g}", pc.Source, pc.Target, pc.Weight, pc.Tick, pc.DopeValue)))
		if ci == len(pcs)-1 {
			w.Write([]byte("\n"))
		} else {
			w.Write([]byte(",\n"))
		}
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("]\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}"))
}
