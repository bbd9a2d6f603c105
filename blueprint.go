package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var LoaderNotFoundError = errors.New("loader not found")
var ParseError = errors.New("invalid json value")
var InstanceError = errors.New("unable to instance shape")

type loadError struct {
	path string
	err  error
}

func (receiver loadError) Error() string {
	return fmt.Sprintf("\"%s\" at path %s", receiver.err, receiver.path)
}

func (receiver loadError) Unwrap() error {
	return receiver.err
}

type LoadErrors struct {
	e []error
	t []string //trace
}

func (receiver *LoadErrors) HasError() bool {
	return len(receiver.e) > 0
}

func (receiver *LoadErrors) Error() string {
	var s []string
	for _, err := range receiver.e {
		s = append(s, err.Error())
	}
	return strings.Join(s, ", ")
}

//add and check error non null
func (receiver *LoadErrors) Add(error error) bool {
	if error != nil {
		var sl []string
		if len(receiver.t) > 1 {
			sl = receiver.t[1:] //without root
		} else {
			sl = receiver.t[:]
		}
		le := &loadError{
			path: "/" + strings.Join(sl, "/"),
			err:  error,
		}
		receiver.e = append(receiver.e, le)
		return true
	}
	return false
}

func (receiver *LoadErrors) tracePush(p string) {
	receiver.t = append(receiver.t, p)
}

func (receiver *LoadErrors) tracePop() string {
	v := receiver.t[len(receiver.t)-1]
	receiver.t = receiver.t[0 : len(receiver.t)-1]
	return v
}

func newLoadErrors() (*LoadErrors, error) {
	instance := new(LoadErrors)
	instance.e = make([]error, 0)
	instance.t = make([]string, 0)
	return instance, nil
}

type LoaderGetter func(blueprint string) Loader
type Loader func(get LoaderGetter, eCollector *LoadErrors, payload []byte) interface{}

type Package struct {
	M             map[string]Loader
	FilePath      string
	FileExtension string
}

type BlueprintManager struct {
	FilePath      string
	FileExtension string
	loaders       map[string]Loader
}

// Load dispatches the payload through the "/" loader and expects a *Scene.
func (receiver *BlueprintManager) Load(payload []byte) (*Scene, error) {
	root, ok := receiver.loaders["/"]
	if !ok {
		return nil, LoaderNotFoundError
	}
	collector, _ := newLoadErrors()
	stuff := root(receiver.getLoader, collector, payload)
	if stuff == nil {
		collector.Add(InstanceError)
		return nil, collector
	}
	scene, ok := stuff.(*Scene)
	if !ok {
		collector.Add(InstanceError)
		return nil, collector
	}
	if collector.HasError() {
		return nil, collector
	}
	return scene, nil
}

func (receiver *BlueprintManager) LoadFile(id string) (*Scene, error) {
	payload, err := os.ReadFile(receiver.FilePath + "/" + id + "." + receiver.FileExtension)
	if err != nil {
		return nil, err
	}
	return receiver.Load(payload)
}

func (receiver *BlueprintManager) AddLoader(blueprint string, loader Loader) {
	receiver.loaders[blueprint] = receiver.wrapLoader(loader, blueprint)
}

func (receiver *BlueprintManager) AddLoaderPackage(p *Package) {
	for blueprint, loader := range p.M {
		receiver.loaders[blueprint] = receiver.wrapLoader(loader, blueprint)
	}
	receiver.FilePath = p.FilePath
	receiver.FileExtension = p.FileExtension
}

func (receiver *BlueprintManager) getLoader(blueprint string) Loader {
	return receiver.loaders[blueprint]
}

func (receiver *BlueprintManager) wrapLoader(loader Loader, blueprint string) Loader {
	return func(get LoaderGetter, eCollector *LoadErrors, payload []byte) interface{} {
		eCollector.tracePush(blueprint) //trace wrapper
		ret := loader(get, eCollector, payload)
		eCollector.tracePop()
		return ret
	}
}

func NewBlueprintManager() (*BlueprintManager, error) {
	instance := new(BlueprintManager)
	instance.loaders = make(map[string]Loader)
	return instance, nil
}
