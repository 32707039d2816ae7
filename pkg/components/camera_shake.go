package components

// CameraShakeComponent 一次镜头震动
// 与 LifetimeComponent 搭配：生命周期结束即震动结束
type CameraShakeComponent struct {
	// Magnitude 最大偏移幅度（像素）
	Magnitude float64
}
