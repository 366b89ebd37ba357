package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/remote"
	"shoespot_dev_v1_202608/pkg/database"
)

// ==================== 测试辅助 ====================

// newTestCache 内存 sqlite 缓存
func newTestCache(t *testing.T) *localcache.Cache {
	t.Helper()
	return localcache.NewCache(database.InitTestDB(localcache.Models()...))
}

// fakeRemote 内存版远端存储，讲 REST 行存储的方言
type fakeRemote struct {
	mu sync.Mutex

	row     map[string]json.RawMessage // store_data 单例行，nil 表示不存在
	users   []model.AppUser
	upserts int // store_data 写入次数

	failUpserts bool // 打开后所有 store_data 写入返回 500
	server      *httptest.Server
}

func newFakeRemote(t *testing.T) *fakeRemote {
	t.Helper()
	f := &fakeRemote{}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// Client 指向假远端的客户端
func (f *fakeRemote) Client() *remote.Client {
	return remote.NewClient(f.server.URL, "test-key")
}

// SetRow 预置单例行
func (f *fakeRemote) SetRow(t *testing.T, fields map[string]interface{}) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.row = map[string]json.RawMessage{}
	for k, v := range fields {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("预置行序列化失败: %v", err)
		}
		f.row[k] = data
	}
}

// RowField 取单例行字段并反序列化
func (f *fakeRemote) RowField(t *testing.T, field string, dest interface{}) bool {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.row == nil {
		return false
	}
	raw, ok := f.row[field]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("行字段 %s 反序列化失败: %v", field, err)
	}
	return true
}

func (f *fakeRemote) UpsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts
}

func (f *fakeRemote) SetFailUpserts(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failUpserts = fail
}

func (f *fakeRemote) AddUser(u model.AppUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, u)
}

func (f *fakeRemote) Users() []model.AppUser {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.AppUser(nil), f.users...)
}

// handle REST 行存储方言的最小实现
func (f *fakeRemote) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/store_data"):
		f.handleStoreData(w, r)
	case strings.HasSuffix(r.URL.Path, "/app_users"):
		f.handleUsers(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeRemote) handleStoreData(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		if f.row == nil {
			w.Write([]byte("[]"))
			return
		}
		row, _ := json.Marshal(f.row)
		w.Write([]byte("[" + string(row) + "]"))

	case http.MethodPost:
		if f.failUpserts {
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
			return
		}
		var patch map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if f.row == nil {
			f.row = map[string]json.RawMessage{}
		}
		for k, v := range patch {
			f.row[k] = v
		}
		f.upserts++
		w.WriteHeader(http.StatusCreated)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeRemote) handleUsers(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q := r.URL.Query()
	eq := func(key string) (string, bool) {
		v := q.Get(key)
		if strings.HasPrefix(v, "eq.") {
			return strings.TrimPrefix(v, "eq."), true
		}
		return "", false
	}

	switch r.Method {
	case http.MethodGet:
		matched := make([]model.AppUser, 0)
		for _, u := range f.users {
			if email, ok := eq("email"); ok && u.Email != email {
				continue
			}
			if pass, ok := eq("password"); ok && u.Password != pass {
				continue
			}
			matched = append(matched, u)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matched)

	case http.MethodPost:
		var u model.AppUser
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.users = append(f.users, u)
		w.WriteHeader(http.StatusCreated)

	case http.MethodPatch:
		id, ok := eq("id")
		if !ok {
			http.Error(w, "missing id filter", http.StatusBadRequest)
			return
		}
		var u model.AppUser
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for i := range f.users {
			if f.users[i].ID == id {
				f.users[i] = u
			}
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
