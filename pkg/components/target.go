package components

// TargetState 目标的受损状态，由剩余生命值推导
type TargetState int

const (
	// TargetHealthy 完好（hp ≥ 3）
	TargetHealthy TargetState = iota
	// TargetDamaged 受损（hp = 2）
	TargetDamaged
	// TargetCritical 濒危（hp = 1）
	TargetCritical
	// TargetDestroyed 已摧毁（hp = 0）
	TargetDestroyed
)

// String 返回状态名
func (s TargetState) String() string {
	switch s {
	case TargetHealthy:
		return "Healthy"
	case TargetDamaged:
		return "Damaged"
	case TargetCritical:
		return "Critical"
	case TargetDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// TargetStateFor 根据生命值返回目标状态
func TargetStateFor(hp int) TargetState {
	switch {
	case hp <= 0:
		return TargetDestroyed
	case hp == 1:
		return TargetCritical
	case hp == 2:
		return TargetDamaged
	default:
		return TargetHealthy
	}
}

// TargetComponent 可被摧毁的静态目标
// 目标不移动、不攻击，只承受伤害
type TargetComponent struct {
	// State 当前状态，每次命中后由 DamageSystem 更新
	State TargetState
}
