package store

import (
	"context"
	"log"
	"sync"
	"time"

	"shoespot_dev_v1_202608/internal/remote"
)

// ==================== 出箱队列 ====================
// 集合写入对 UI 是 fire-and-forget 的，但不做裸 goroutine：
// 单工作协程按入队顺序投递，带有限重试；重试耗尽的写入
// 停到 parked 区，由定时任务再冲，终态失败可通过 LastError 观测。
// 同一集合内的写入因此保持 setter 调用顺序。

const (
	outboxQueueSize  = 64
	outboxMaxRetries = 3
	outboxTimeout    = 10 * time.Second
)

// writeOp 一次字段级 upsert
// seq 是字段内单调递增的序号，滞留重投时用来识别已被更新写入超越的旧载荷
type writeOp struct {
	field   string
	seq     uint64
	payload interface{}
	client  *remote.Client // 入队时解析好的客户端
}

type outbox struct {
	resolve func() *remote.Client
	ops     chan writeOp
	done    chan struct{}
	wg      sync.WaitGroup

	mu        sync.Mutex
	seqs      map[string]uint64 // 字段 -> 已分配的最新序号
	delivered map[string]uint64 // 字段 -> 已成功投递的最高序号
	parked    []writeOp
	lastErr   error
}

func newOutbox(resolve func() *remote.Client) *outbox {
	ob := &outbox{
		resolve:   resolve,
		ops:       make(chan writeOp, outboxQueueSize),
		done:      make(chan struct{}),
		seqs:      make(map[string]uint64),
		delivered: make(map[string]uint64),
	}
	go ob.loop()
	return ob
}

// Enqueue 投递一个字段写入
// 当前解析不出客户端（远端未配置）时直接丢弃——本地态已是完整事实
func (ob *outbox) Enqueue(field string, payload interface{}) {
	client := ob.resolve()
	if client == nil {
		return
	}

	ob.mu.Lock()
	ob.seqs[field]++
	op := writeOp{field: field, seq: ob.seqs[field], payload: payload, client: client}
	ob.mu.Unlock()

	select {
	case <-ob.done:
		return
	default:
	}

	ob.wg.Add(1)
	select {
	case ob.ops <- op:
	default:
		// 队列打满：不阻塞调用方，转入 parked 等定时冲刷
		ob.wg.Done()
		ob.park(op)
	}
}

func (ob *outbox) loop() {
	for {
		select {
		case op := <-ob.ops:
			ob.process(op)
			ob.wg.Done()
		case <-ob.done:
			return
		}
	}
}

// process 带有限重试的单次投递
func (ob *outbox) process(op writeOp) {
	var lastErr error
	for attempt := 0; attempt < outboxMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 200 * time.Millisecond)
		}
		ctx, cancel := context.WithTimeout(context.Background(), outboxTimeout)
		err := op.client.UpsertStoreRow(ctx, map[string]interface{}{op.field: op.payload})
		cancel()
		if err == nil {
			ob.markDelivered(op)
			ob.setLastErr(nil)
			return
		}
		lastErr = err
	}

	log.Printf("[outbox] 字段 %s 写入重试耗尽: %v", op.field, lastErr)
	ob.setLastErr(lastErr)
	ob.park(op)
}

// markDelivered 记录字段的成功投递序号，并作废被超越的滞留写入
// 不作废会让定时补投把远端回退到旧载荷
func (ob *outbox) markDelivered(op writeOp) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	if op.seq > ob.delivered[op.field] {
		ob.delivered[op.field] = op.seq
	}
	kept := ob.parked[:0]
	for _, p := range ob.parked {
		if p.field == op.field && p.seq <= op.seq {
			continue
		}
		kept = append(kept, p)
	}
	ob.parked = kept
}

func (ob *outbox) park(op writeOp) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	// 已有更新的成功投递，旧载荷直接作废
	if op.seq <= ob.delivered[op.field] {
		return
	}
	// 同字段只留序号最大的一笔：整字段替换语义下旧载荷已无意义
	for i := range ob.parked {
		if ob.parked[i].field == op.field {
			if op.seq >= ob.parked[i].seq {
				ob.parked[i] = op
			}
			return
		}
	}
	ob.parked = append(ob.parked, op)
}

// stale 该写入是否已被同字段更新的成功投递超越
func (ob *outbox) stale(op writeOp) bool {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return op.seq <= ob.delivered[op.field]
}

// FlushParked 重投 parked 区的写入，定时任务调用
// 仍失败的留在原地，下个周期再来；被超越的旧载荷直接丢弃，不再触达远端
func (ob *outbox) FlushParked(ctx context.Context) {
	ob.mu.Lock()
	pending := ob.parked
	ob.parked = nil
	ob.mu.Unlock()

	for _, op := range pending {
		if ob.stale(op) {
			continue
		}
		err := op.client.UpsertStoreRow(ctx, map[string]interface{}{op.field: op.payload})
		if err != nil {
			log.Printf("[outbox] 补投字段 %s 仍失败: %v", op.field, err)
			ob.setLastErr(err)
			ob.park(op)
			continue
		}
		ob.markDelivered(op)
		ob.setLastErr(nil)
	}
}

// ParkedCount 滞留写入数，观测用
func (ob *outbox) ParkedCount() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return len(ob.parked)
}

func (ob *outbox) setLastErr(err error) {
	ob.mu.Lock()
	ob.lastErr = err
	ob.mu.Unlock()
}

// LastError 最近一次终态结果
func (ob *outbox) LastError() error {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.lastErr
}

// Wait 等待队列排空
func (ob *outbox) Wait() {
	ob.wg.Wait()
}

// Stop 停止工作协程，已入队未处理的写入随之放弃
func (ob *outbox) Stop() {
	select {
	case <-ob.done:
	default:
		close(ob.done)
	}
}
