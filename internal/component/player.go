package component

// Player хранит позицию и боевое состояние игрока.
type Player struct {
	Position  Position
	Health    float64
	MaxHealth float64
	// FireTimer — время до следующего выстрела
	FireTimer float64
	Facing    Position
	Stamina   Stamina
	Running   bool // игрок бежит в текущем тике
}

func (p *Player) IsDead() bool {
	return p.Health <= 0
}
