package game

import (
	"log"

	"github.com/decker502/contralike/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理关卡中所有音效的播放
//   - 音效在首次播放时合成并缓存播放器
//   - 音量与开关取自关卡配置
type AudioManager struct {
	context      *audio.Context
	enabled      bool
	volume       float64
	soundPlayers map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（每个进程只能创建一个）
//   - cfg: 音频配置
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) *AudioManager {
	return &AudioManager{
		context:      ctx,
		enabled:      cfg.Enabled,
		volume:       cfg.Volume,
		soundPlayers: make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效资源ID（如 SoundShoot）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.enabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetEnabled 开启或关闭音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetSoundVolume 设置音效音量 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.volume = volume
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.context == nil {
		return nil
	}

	pcm, ok := SynthesizeSound(soundID, am.context.SampleRate())
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// PreloadSounds 预合成音效
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}
