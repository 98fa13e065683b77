// Copyright 2026 The Autoquant Authors
// This file is part of Autoquant.
//
// Autoquant is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Autoquant is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Autoquant. If not, see <http://www.gnu.org/licenses/>.

// Package fit is a generated GoMock package.
package fit

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockFunction is a mock of Function interface.
type MockFunction struct {
	ctrl     *gomock.Controller
	recorder *MockFunctionMockRecorder
	isgomock struct{}
}

// MockFunctionMockRecorder is the mock recorder for MockFunction.
type MockFunctionMockRecorder struct {
	mock *MockFunction
}

// NewMockFunction creates a new mock instance.
func NewMockFunction(ctrl *gomock.Controller) *MockFunction {
	mock := &MockFunction{ctrl: ctrl}
	mock.recorder = &MockFunctionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFunction) EXPECT() *MockFunctionMockRecorder {
	return m.recorder
}

// Function mocks base method.
func (m *MockFunction) Function(x float64) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Function", x)
	ret0, _ := ret[0].(float64)
	return ret0
}

// Function indicates an expected call of Function.
func (mr *MockFunctionMockRecorder) Function(x any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Function", reflect.TypeOf((*MockFunction)(nil).Function), x)
}

// Inverse mocks base method.
func (m *MockFunction) Inverse(y float64) float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Inverse", y)
	ret0, _ := ret[0].(float64)
	return ret0
}

// Inverse indicates an expected call of Inverse.
func (mr *MockFunctionMockRecorder) Inverse(y any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Inverse", reflect.TypeOf((*MockFunction)(nil).Inverse), y)
}

// Name mocks base method.
func (m *MockFunction) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockFunctionMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockFunction)(nil).Name))
}

// Params mocks base method.
func (m *MockFunction) Params() []float64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Params")
	ret0, _ := ret[0].([]float64)
	return ret0
}

// Params indicates an expected call of Params.
func (mr *MockFunctionMockRecorder) Params() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Params", reflect.TypeOf((*MockFunction)(nil).Params))
}
