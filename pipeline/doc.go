// Copyright 2026 The Stageflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline provides the in-process composition of stageflow stages.
//
// A stageflow pipeline consists of a tree of Nodes, with the root Node acting
// as the record source, and each child node either a record transformer or a
// sink. Nodes can be defined like:
//
//   source := pipeline.NewNode("source", "generator", adaptor.Config{"delay": "0s"})
//   xform := pipeline.NewNode("xform", "transformer", adaptor.Config{})
//   sink := pipeline.NewNode("sink", "consumer", adaptor.Config{"uri": "stdout://"})
//   source.Add(xform)
//   xform.Add(sink)
//
// and pipelines can be defined:
//
//   p, err := pipeline.NewPipeline("version", source, events.LogEmitter(), 5*time.Second)
//   if err != nil {
//     fmt.Println(err)
//     os.Exit(1)
//   }
//   p.Run()
//
// the event emitters are defined in stageflow/events, and are used to deliver
// error/metrics/etc about the running process
package pipeline
