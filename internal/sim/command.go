package sim

// CommandType enumerates the supported simulation commands.
type CommandType string

const (
	CommandMove          CommandType = "Move"
	CommandAttack        CommandType = "Attack"
	CommandChooseUpgrade CommandType = "ChooseUpgrade"
	CommandQuit          CommandType = "Quit"
)

// MoveCommand carries the desired movement vector. The world normalizes it
// before integration, so callers may send raw analog input.
type MoveCommand struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// AttackCommand requests a weapon swing along an aim vector. A zero vector
// falls back to the player's current facing.
type AttackCommand struct {
	AimX float64 `json:"aimX"`
	AimY float64 `json:"aimY"`
}

// ChooseUpgradeCommand selects one option from the pending draft.
type ChooseUpgradeCommand struct {
	Index int `json:"index"`
}

// Command represents an intent captured for processing on the next step.
type Command struct {
	OriginStep uint64                `json:"originStep"`
	ActorID    string                `json:"actorId"`
	Type       CommandType           `json:"type"`
	Move       *MoveCommand          `json:"move,omitempty"`
	Attack     *AttackCommand        `json:"attack,omitempty"`
	Choose     *ChooseUpgradeCommand `json:"choose,omitempty"`
}
