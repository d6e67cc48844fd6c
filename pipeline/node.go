// Copyright 2026 The Stageflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"sync"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/log"
	"github.com/stageflow/stageflow/pipe"
)

var (
	transformerNode = "transformer"
)

// A Node is the basic building block of stageflow pipelines.
// Nodes are constructed in a tree, with the first node broadcasting
// records to each of its children.
// Node trees can be constructed as follows:
// 	source := pipeline.NewNode("source", "generator", adaptor.Config{})
// 	sink1 := pipeline.NewNode("out1", "stdio", adaptor.Config{"uri": "stdout://"})
// 	sink2 := pipeline.NewNode("out2", "stdio", adaptor.Config{"uri": "stderr://"})
// 	source.Add(sink1)
// 	source.Add(sink2)
//
type Node struct {
	Name     string         `json:"name"`     // the name of this node
	Type     string         `json:"type"`     // the node's type, used to look up the adaptor
	Extra    adaptor.Config `json:"extra"`    // extra config options that are passed to the adaptor
	Children []*Node        `json:"children"` // the nodes are set up as a tree, this is an array of this node's children
	Parent   *Node          `json:"parent"`   // this node's parent node, if this is nil, this is a 'source' node

	c    client.Client
	r    client.Reader
	w    client.Writer
	done chan struct{}
	wg   sync.WaitGroup
	l    log.Logger
	pipe *pipe.Pipe
}

// NewNode creates a new Node struct
func NewNode(name, kind string, extra adaptor.Config) *Node {
	return &Node{
		Name:     name,
		Type:     kind,
		Extra:    extra,
		Children: make([]*Node, 0),
		done:     make(chan struct{}),
	}
}

// String
func (n *Node) String() string {
	var (
		s      string
		prefix string
		uri    = n.Extra.GetString("uri")
		depth  = n.depth()
	)

	prefixformatter := fmt.Sprintf("%%%ds%%-%ds", depth, 18-depth)

	if n.Parent == nil { // root node
		prefix = fmt.Sprintf(prefixformatter, " ", "- Source: ")
	} else if len(n.Children) == 0 {
		prefix = fmt.Sprintf(prefixformatter, " ", "- Sink: ")
	} else if n.Type == transformerNode {
		prefix = fmt.Sprintf(prefixformatter, " ", "- Transformer: ")
	}

	s += fmt.Sprintf("%-18s %-40s %-15s %s", prefix, n.Name, n.Type, uri)

	for _, child := range n.Children {
		s += "\n" + child.String()
	}
	return s
}

// depth is a measure of how deep into the node tree this node is.  Used to indent the String() stuff
func (n *Node) depth() int {
	if n.Parent == nil {
		return 1
	}

	return 1 + n.Parent.depth()
}

// Path returns a string representation of the names of all the node's parents concatenated with "/"  used in metrics
// eg. for the following tree
// source := pipeline.NewNode("generated", "generator", adaptor.Config{})
// 	sink1 := pipeline.NewNode("out", "stdio", adaptor.Config{"uri": "stdout://"})
// 	source.Add(sink1)
// 'source' will have a Path of 'generated', and 'sink1' will have a path of 'generated/out'
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}

	return n.Parent.Path() + "/" + n.Name
}

// Add the given node as a child of this node.
// This has side effects, and sets the parent of the given node
func (n *Node) Add(node *Node) *Node {
	node.Parent = n
	n.Children = append(n.Children, node)
	return n
}

// Init sets up the node for action.  It creates a pipe and adaptor for this node,
// and then recurses down the tree calling Init on each child
func (n *Node) Init() (err error) {
	path := n.Path()

	n.l = log.With("name", n.Name).With("type", n.Type).With("path", path)

	a, err := adaptor.GetAdaptor(n.Type, n.Extra)
	if err != nil {
		return err
	}

	n.c, err = a.Client()
	if err != nil {
		return err
	}

	if n.Parent == nil { // we don't have a parent, we're the source
		n.pipe = pipe.NewPipe(nil, path)
		n.r, err = a.Reader()
		if err != nil {
			return err
		}
	} else { // we have a parent, so pass in the parent's pipe here
		n.pipe = pipe.NewPipe(n.Parent.pipe, path)
		n.w, err = a.Writer(n.done, &n.wg)
		if err != nil {
			return err
		}
	}

	for _, child := range n.Children {
		err = child.Init() // init each child
		if err != nil {
			return err
		}
	}

	return nil
}

// Start starts the node's children in a go routine, and then runs either start() or listen()
// on the node's adaptor.  Root nodes (nodes with no parent) will run start()
// and will emit records to their children,
// all descendant nodes run listen() on the adaptor
func (n *Node) Start() error {
	for _, child := range n.Children {
		go func(node *Node) {
			node.Start()
		}(child)
	}

	if n.Parent == nil {
		return n.start()
	}

	return n.listen()
}

// start the adaptor as a source
func (n *Node) start() (err error) {
	n.l.Infoln("node Starting...")
	defer func() {
		n.pipe.Stop()
	}()

	s, err := n.c.Connect()
	if err != nil {
		return err
	}
	if closer, ok := s.(client.Closer); ok {
		defer closer.Close()
	}
	readFunc := n.r.Read()
	lineChan, err := readFunc(s, n.done)
	if err != nil {
		return err
	}
	for line := range lineChan {
		n.pipe.Send(line)
	}
	if reporter, ok := n.r.(client.ErrorReporter); ok {
		if err := reporter.Err(); err != nil {
			return err
		}
	}

	n.l.Infoln("adaptor Start finished...")
	return nil
}

func (n *Node) listen() (err error) {
	n.l.Infoln("adaptor Listening...")
	defer func() {
		n.l.Infoln("adaptor Listen closing...")
		n.pipe.Stop()
	}()

	return n.pipe.Listen(n.write)
}

func (n *Node) write(line string) (string, error) {
	sess, err := n.c.Connect()
	if err != nil {
		return "", err
	}
	defer func() {
		if s, ok := sess.(client.Closer); ok {
			s.Close()
		}
	}()
	out, err := n.w.Write(line)(sess)

	if err != nil {
		n.pipe.Err <- adaptor.Error{
			Lvl:    adaptor.ERROR,
			Path:   n.Path(),
			Err:    fmt.Sprintf("write record error (%s)", err),
			Record: line,
		}
	}
	return out, err
}

// Stop this node's adaptor, and sends a stop to each child of this node
func (n *Node) Stop() {
	n.stop()
	for _, node := range n.Children {
		node.Stop()
	}
}

func (n *Node) stop() error {
	n.l.Infoln("adaptor Stopping...")
	n.pipe.Stop()

	close(n.done)
	n.wg.Wait()

	if closer, ok := n.c.(client.Closer); ok {
		closer.Close()
	}

	n.l.Infoln("adaptor Stopped")
	return nil
}

// Validate ensures that the node tree conforms to a proper structure.
// Node trees must have at least one source, and one sink.
// dangling transformers are forbidden.  Validate only knows about default adaptors
// in the adaptor package, it can't validate any custom adaptors
func (n *Node) Validate() bool {
	if n.Parent == nil && len(n.Children) == 0 { // the root node should have children
		return false
	}

	if n.Type == transformerNode && len(n.Children) == 0 { // transformers need children
		return false
	}

	for _, child := range n.Children {
		if !child.Validate() {
			return false
		}
	}
	return true
}

// Endpoints recurses down the node tree and accumulates a map associating node name with node type
// this is primarily used with the boot event
func (n *Node) Endpoints() map[string]string {
	m := map[string]string{n.Name: n.Type}
	for _, child := range n.Children {
		childMap := child.Endpoints()
		for k, v := range childMap {
			m[k] = v
		}
	}
	return m
}
