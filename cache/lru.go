package cache

// lruNode is a node in a doubly-linked LRU list. It stores its key so an
// eviction can delete the map entry in O(1).
type lruNode struct {
	key  LayoutKey
	prev *lruNode
	next *lruNode
}

// lruList orders cache keys by recency: head is most recently used, tail
// least. Not safe for concurrent use; the owning shard locks around it.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

// Len returns the number of nodes in the list.
func (l *lruList) Len() int {
	return l.len
}

// PushFront adds a new node at the front and returns it.
func (l *lruList) PushFront(key LayoutKey) *lruNode {
	node := &lruNode{key: key}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// MoveToFront marks a node as most recently used.
func (l *lruList) MoveToFront(node *lruNode) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	node.prev = nil
	node.next = l.head
	l.head.prev = node
	l.head = node
	l.len++
}

// Remove unlinks a node from the list.
func (l *lruList) Remove(node *lruNode) {
	if node == nil {
		return
	}
	l.unlink(node)
	node.prev = nil
	node.next = nil
}

// RemoveOldest removes and returns the least recently used key.
func (l *lruList) RemoveOldest() (LayoutKey, bool) {
	if l.tail == nil {
		var zero LayoutKey
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

// unlink detaches a node and decrements the length.
func (l *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	l.len--
}
