package dag_test

import (
	"fmt"

	"github.com/tablemap/tablemap/pkg/dag"
)

func ExampleGraph_basic() {
	// A small shop schema: orders reference customers and products.
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "orders", Width: 240, Height: 128})
	_ = g.AddNode(dag.Node{ID: "customers", Width: 240, Height: 100})
	_ = g.AddNode(dag.Node{ID: "products", Width: 240, Height: 100})
	_ = g.AddEdge(dag.Edge{From: "orders", To: "customers", Label: "customer_id"})
	_ = g.AddEdge(dag.Edge{From: "orders", To: "products", Label: "product_id"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Successors of orders:", g.Successors("orders"))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Successors of orders: [customers products]
}

func ExampleGraph_Sources() {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "orders"})
	_ = g.AddNode(dag.Node{ID: "customers"})
	_ = g.AddEdge(dag.Edge{From: "orders", To: "customers", Label: "customer_id"})

	for _, n := range g.Sources() {
		fmt.Println("source:", n.ID)
	}
	for _, n := range g.Sinks() {
		fmt.Println("sink:", n.ID)
	}
	// Output:
	// source: orders
	// sink: customers
}
