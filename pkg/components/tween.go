package components

// TweenComponent 属性补间动画
//
// 同时驱动实体 ShapeComponent / TextComponent 的 Alpha 和 Scale：
//   - 正向阶段：Duration 秒内从 From 过渡到 To
//   - 停留阶段：Hold 秒保持 To
//   - 往返阶段（Yoyo）：Duration 秒内从 To 回到 From
//
// 以上为一轮，额外重复 Repeat 轮；全部结束后若 DestroyOnComplete 为 true 则销毁实体。
type TweenComponent struct {
	AlphaFrom, AlphaTo float64
	ScaleFrom, ScaleTo float64

	Duration float64 // 单程时长（秒）
	Hold     float64 // 到达终值后停留时长（秒）
	Yoyo     bool
	Repeat   int

	// Easing 缓动函数名，见 utils.EasingByName
	Easing string

	// DestroyOnComplete 动画结束后是否销毁实体
	DestroyOnComplete bool

	// Elapsed 当前轮已经过的时间（秒）
	Elapsed float64

	// Iteration 已完成的轮数
	Iteration int

	// Done 动画是否已结束
	Done bool
}

// CycleDuration 返回一轮动画的总时长（秒）
func (t *TweenComponent) CycleDuration() float64 {
	d := t.Duration + t.Hold
	if t.Yoyo {
		d += t.Duration
	}
	return d
}

// TotalDuration 返回包含重复在内的动画总时长（秒）
func (t *TweenComponent) TotalDuration() float64 {
	return t.CycleDuration() * float64(t.Repeat+1)
}
