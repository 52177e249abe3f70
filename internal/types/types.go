package types

// EntityID — идентификатор активной сущности (враг, снаряд) на стороне вызывающего кода.
type EntityID uint64
