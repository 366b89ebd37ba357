package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shoespot_dev_v1_202608/internal/store"
)

// ==================== OutboxFlushTask 出箱补投任务 ====================
// 远端写入重试耗尽后滞留在出箱 parked 区，这里按周期补投。
// 补投失败的条目留到下个周期，不阻塞任何前台操作。

// OutboxFlushTask 出箱补投任务
type OutboxFlushTask struct {
	store *store.Store
	cron  *cron.Cron
	spec  string
}

// NewOutboxFlushTask 创建补投任务
// spec 为空时默认整分钟触发
func NewOutboxFlushTask(s *store.Store, spec string) *OutboxFlushTask {
	if spec == "" {
		spec = "0 * * * * *"
	}
	return &OutboxFlushTask{
		store: s,
		cron:  cron.New(cron.WithSeconds()),
		spec:  spec,
	}
}

// Start 启动定时补投
func (t *OutboxFlushTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		parked := t.store.ParkedWrites()
		if parked == 0 {
			return
		}
		log.Printf("[task] 出箱补投开始，滞留 %d 笔", parked)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		t.store.FlushParked(ctx)
	})
	if err != nil {
		return err
	}
	t.cron.Start()
	log.Println("[task] 出箱补投任务已启动")
	return nil
}

// Stop 停止任务并等待在跑的补投结束
func (t *OutboxFlushTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
}
