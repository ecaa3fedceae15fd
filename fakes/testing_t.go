package fakes

import "sync"

type TestingT struct {
	FatalfCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Format string
			Args   []interface{}
		}
		Stub func(string, ...interface{})
	}
	HelperCall struct {
		mutex     sync.Mutex
		CallCount int
		Stub      func()
	}
}

func (f *TestingT) Fatalf(param1 string, param2 ...interface{}) {
	f.FatalfCall.mutex.Lock()
	defer f.FatalfCall.mutex.Unlock()
	f.FatalfCall.CallCount++
	f.FatalfCall.Receives.Format = param1
	f.FatalfCall.Receives.Args = param2
	if f.FatalfCall.Stub != nil {
		f.FatalfCall.Stub(param1, param2...)
	}
}
func (f *TestingT) Helper() {
	f.HelperCall.mutex.Lock()
	defer f.HelperCall.mutex.Unlock()
	f.HelperCall.CallCount++
	if f.HelperCall.Stub != nil {
		f.HelperCall.Stub()
	}
}
