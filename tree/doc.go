// Package tree provides a generic, thread-safe, mutable tree.
//
// Every node carries a value, an ordered list of children and a weak
// reference to its parent. Parents own their children through ordinary Go
// pointers; children only observe their parent through a weak.Pointer, so
// a detached subtree is reclaimed by the garbage collector as soon as no
// caller holds a pointer into it.
//
// Each node has its own sync.RWMutex. Operations touching a single node
// take only that node's lock. MoveTo, the only operation that needs several
// locks at once, acquires them in ascending node id order, which makes
// concurrent moves deadlock-free.
//
// Example usage:
//
//	root := tree.New("Richard Stark")
//	ned := root.Push("Ned Stark")
//	lyanna := root.Push("Lyanna Stark")
//	jon := ned.Push("Jon Snow")
//
//	if err := jon.MoveTo(lyanna); err != nil {
//		return err
//	}
//	jon.SetValue("Jon Targaryen")
//
//	if n := lyanna.Find("Jon Targaryen"); n != nil {
//		depth, _ := n.Depth() // 2
//	}
//
// All methods can be called concurrently from multiple goroutines.
package tree
