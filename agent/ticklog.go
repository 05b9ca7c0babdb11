// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agent

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/reflex/zones"
)

// TickLog is a table with one row per environment step
type TickLog struct {
	RunID string        `desc:"id of the run the log belongs to"`
	Table *etable.Table `view:"no-inline" desc:"the log"`
}

// NewTickLog returns a new empty log for given run
func NewTickLog(runID string) *TickLog {
	tl := &TickLog{RunID: runID, Table: &etable.Table{}}
	tl.Config()
	return tl
}

// Config configures the columns of the table, emptying it
func (tl *TickLog) Config() {
	dt := tl.Table
	dt.SetMetaData("name", "TickLog")
	dt.SetMetaData("desc", "record of each environment step")
	dt.SetMetaData("run", tl.RunID)
	sch := etable.Schema{
		{"Tick", etensor.INT64, nil, nil},
		{"Strategy", etensor.STRING, nil, nil},
		{"Attended", etensor.STRING, nil, nil},
		{"Surprise", etensor.INT64, nil, nil},
		{"AttnX", etensor.INT64, nil, nil},
		{"AttnY", etensor.INT64, nil, nil},
		{"HandX", etensor.FLOAT64, nil, nil},
		{"HandY", etensor.FLOAT64, nil, nil},
	}
	for _, act := range Actions {
		sch = append(sch, etable.Column{act, etensor.INT64, nil, nil})
	}
	sch = append(sch, etable.Schema{
		{"Patterns", etensor.INT64, nil, nil},
		{"Conns", etensor.INT64, nil, nil},
	}...)
	dt.SetFromSchema(sch, 0)
}

// Log adds a row for the environment step that returned res
func (tl *TickLog) Log(ag *Agent, pk *Packet, res *Result) {
	dt := tl.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Tick", row, float64(res.CurrentTick))
	dt.SetCellString("Strategy", row, ag.Strategy.String())
	dt.SetCellString("Attended", row, ag.Attended)
	dt.SetCellFloat("Surprise", row, float64(res.Surprise))
	dt.SetCellFloat("AttnX", row, float64(res.AttentionSpot.X))
	dt.SetCellFloat("AttnY", row, float64(res.AttentionSpot.Y))
	if hand := zones.FindBody(pk.Bodies, zones.HandName); hand != nil {
		dt.SetCellFloat("HandX", row, float64(hand.Center.X))
		dt.SetCellFloat("HandY", row, float64(hand.Center.Y))
	}
	for _, act := range Actions {
		dt.SetCellFloat(act, row, float64(res.Actions[act]))
	}
	dt.SetCellFloat("Patterns", row, float64(ag.Net.Store.Len()))
	dt.SetCellFloat("Conns", row, float64(ag.Net.Conns.Len()))
}

// WriteCSV writes the log as comma separated values with headers
func (tl *TickLog) WriteCSV(w io.Writer) error {
	return tl.Table.WriteCSV(w, etable.Comma, etable.Headers)
}

// SaveCSV saves the log to a CSV file
func (tl *TickLog) SaveCSV(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := tl.WriteCSV(bw); err != nil {
		log.Println(err)
		return err
	}
	return bw.Flush()
}
